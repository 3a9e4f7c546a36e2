package notification

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByEmail(ctx context.Context, email string) ([]Notification, error)
	MarkAllRead(ctx context.Context, email string) error
	DeleteAllForEmail(ctx context.Context, email string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) ListByEmail(ctx context.Context, email string) ([]Notification, error) {
	var out []Notification
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) MarkAllRead(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("email = ? AND status = ?", email, StatusUnread).
		Update("status", StatusRead).Error
}

func (r *repository) DeleteAllForEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&Notification{}).Error
}
