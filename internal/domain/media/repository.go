package media

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Stats partitions one user's media by lifecycle status.
type Stats struct {
	Total      int64
	Processing int64
	Completed  int64
	Failed     int64
}

type Repository interface {
	Create(ctx context.Context, m *Media) error
	GetByOwnerAndID(ctx context.Context, email, id string) (*Media, error)
	Delete(ctx context.Context, email, id string) error
	ListByOwner(ctx context.Context, email string) ([]*Media, error)
	RecentByOwner(ctx context.Context, email string, limit int) ([]*Media, error)
	StatsByOwner(ctx context.Context, email string) (*Stats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByOwnerAndID scopes the lookup to the owner, so a foreign id is
// indistinguishable from a missing one.
func (r *repository) GetByOwnerAndID(ctx context.Context, email, id string) (*Media, error) {
	var m Media
	err := r.db.WithContext(ctx).Where("email = ? AND id = ?", email, id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) Delete(ctx context.Context, email, id string) error {
	res := r.db.WithContext(ctx).Where("email = ? AND id = ?", email, id).Delete(&Media{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMediaNotFound
	}
	return nil
}

func (r *repository) ListByOwner(ctx context.Context, email string) ([]*Media, error) {
	var out []*Media
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("uploaded_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) RecentByOwner(ctx context.Context, email string, limit int) ([]*Media, error) {
	var out []*Media
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *repository) StatsByOwner(ctx context.Context, email string) (*Stats, error) {
	var rows []struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Model(&Media{}).
		Select("status, COUNT(*) AS count").
		Where("email = ?", email).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch Status(row.Status) {
		case StatusProcessing:
			stats.Processing = row.Count
		case StatusCompleted:
			stats.Completed = row.Count
		case StatusFailed:
			stats.Failed = row.Count
		}
	}
	return stats, nil
}
