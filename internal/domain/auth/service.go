package auth

import (
	"context"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"snapstream/internal/domain/media"
	"snapstream/internal/domain/notification"
	"snapstream/internal/domain/session"
)

// Service contains all business logic for accounts: registration, login,
// profile updates and account deletion with its cascade.
type Service struct {
	users    UserRepository
	media    media.Repository
	blobs    media.BlobStore
	sessions sessionManager
	notify   notifier
}

type LoginResult struct {
	User  *User
	Token string
}

func NewService(users UserRepository, mediaRepo media.Repository, blobs media.BlobStore, sessions sessionManager, notify notifier) *Service {
	return &Service{
		users:    users,
		media:    mediaRepo,
		blobs:    blobs,
		sessions: sessions,
		notify:   notify,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)
	password := strings.TrimSpace(req.Password)

	if username == "" || email == "" || password == "" {
		return nil, ErrAllFieldsRequired
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.notify.Add(ctx, email, "Welcome!", "Your SnapStream account created successfully.")
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest, userAgent, ip string) (*LoginResult, error) {
	email := normalizeEmail(req.Email)
	password := strings.TrimSpace(req.Password)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenStr, err := s.sessions.Start(ctx, user.Email, userAgent, ip)
	if err != nil {
		return nil, err
	}

	s.notify.Add(ctx, user.Email, "Login Success", "You logged in successfully.")
	return &LoginResult{User: user, Token: tokenStr}, nil
}

// Logout revokes the session. Unconditional and idempotent.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.End(ctx, sessionID)
}

func (s *Service) CurrentUser(ctx context.Context, email string) (*User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *Service) UpdateProfile(ctx context.Context, email string, req UpdateProfileRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.Username = username
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.notify.Add(ctx, email, "Profile Updated", "Your username updated successfully.")
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, email string, req ChangePasswordRequest) error {
	current := strings.TrimSpace(req.CurrentPassword)
	next := strings.TrimSpace(req.NewPassword)

	if current == "" || next == "" {
		return ErrAllFieldsRequired
	}
	if len(next) < 6 {
		return ErrPasswordTooShort
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := hashPassword(next)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.notify.Add(ctx, email, "Password Updated", "Your password updated successfully.")
	return nil
}

// DeleteAccount removes the user and everything it owns. The record cascade
// (media rows, notifications, sessions, the user itself) commits in one
// transaction; blob removal runs afterwards, best-effort.
func (s *Service) DeleteAccount(ctx context.Context, email string) error {
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		return err
	}

	owned, err := s.media.ListByOwner(ctx, email)
	if err != nil {
		return err
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).Delete(&media.Media{}).Error; err != nil {
			return err
		}
		if err := tx.Where("email = ?", email).Delete(&notification.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("email = ?", email).Delete(&session.Session{}).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", email).Delete(&User{}).Error
	})
	if err != nil {
		return err
	}

	for _, m := range owned {
		if rmErr := s.blobs.Remove(ctx, m.StoredName); rmErr != nil {
			log.Printf("cascade blob delete failed: name=%s err=%v", m.StoredName, rmErr)
		}
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
