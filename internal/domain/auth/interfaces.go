package auth

import (
	"context"

	"gorm.io/gorm"
)

// UserRepository covers only what the auth service needs from the record
// store. DB exposes the handle for the account-deletion transaction.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *User) error
	DB() *gorm.DB
}

type sessionManager interface {
	Start(ctx context.Context, email, userAgent, ip string) (string, error)
	End(ctx context.Context, sessionID string) error
}

type notifier interface {
	Add(ctx context.Context, email, title, message string)
}
