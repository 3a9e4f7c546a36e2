package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"snapstream/internal/pkg/token"
)

var ErrNoSession = errors.New("no active session")

// Identity is the resolved owner of a valid session token.
type Identity struct {
	Email     string
	SessionID string
}

type Service struct {
	repo   Repository
	tokens *token.Service
}

func NewService(repo Repository, tokens *token.Service) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Start opens a session for an authenticated identity and returns the signed
// token the browser holds.
func (s *Service) Start(ctx context.Context, email, userAgent, ip string) (string, error) {
	now := time.Now()
	row := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		UserAgent: nullableString(userAgent),
		IP:        nullableString(ip),
		ExpiresAt: now.Add(s.tokens.TTL()),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return "", err
	}
	return s.tokens.Generate(row.ID, email)
}

// Resolve maps a token back to its identity. Signature, token expiry and the
// server-side row all have to check out; anything else is ErrNoSession.
func (s *Service) Resolve(ctx context.Context, tokenStr string) (*Identity, error) {
	claims, err := s.tokens.Validate(tokenStr)
	if err != nil {
		return nil, ErrNoSession
	}

	row, err := s.repo.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if row.RevokedAt != nil || !row.ExpiresAt.After(time.Now()) {
		return nil, ErrNoSession
	}

	return &Identity{Email: row.Email, SessionID: row.ID}, nil
}

// End revokes a single session. Idempotent.
func (s *Service) End(ctx context.Context, sessionID string) error {
	return s.repo.Revoke(ctx, sessionID)
}

// EndAllForEmail revokes every session of one identity.
func (s *Service) EndAllForEmail(ctx context.Context, email string) error {
	return s.repo.RevokeAllForEmail(ctx, email)
}

func nullableString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
