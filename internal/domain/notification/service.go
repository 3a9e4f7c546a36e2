package notification

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add appends an event to the user's log. It is best-effort: a failure here
// must never fail the operation that triggered it, so errors are logged and
// dropped.
func (s *Service) Add(ctx context.Context, email, title, message string) {
	n := &Notification{
		ID:        uuid.NewString(),
		Email:     email,
		Title:     title,
		Message:   message,
		Status:    StatusUnread,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification add failed: email=%s title=%q err=%v", email, title, err)
	}
}

// List returns the user's notifications, newest first.
func (s *Service) List(ctx context.Context, email string) ([]Notification, error) {
	return s.repo.ListByEmail(ctx, email)
}

// MarkAllRead is idempotent and a no-op for a user with zero notifications.
func (s *Service) MarkAllRead(ctx context.Context, email string) error {
	return s.repo.MarkAllRead(ctx, email)
}

// ClearAll deletes the user's whole log. Idempotent.
func (s *Service) ClearAll(ctx context.Context, email string) error {
	return s.repo.DeleteAllForEmail(ctx, email)
}
