package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"fartburger/models"
	"fartburger/utils"

	"github.com/google/uuid"
	"github.com/matthewhartstonge/argon2"
)

// Authenticator decides whether a login/password pair opens the admin panel.
type Authenticator interface {
	Authenticate(login, password string) bool
}

// StaticCredentials accepts one configured login. Only an argon2 hash of the
// password is kept in memory.
type StaticCredentials struct {
	login string
	hash  []byte
}

func NewStaticCredentials(login, password string) (*StaticCredentials, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &StaticCredentials{login: login, hash: encoded}, nil
}

func (c *StaticCredentials) Authenticate(login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(c.login)) == 1
	ok, err := argon2.VerifyEncoded([]byte(password), c.hash)
	return loginOK && err == nil && ok
}

type AuthService struct {
	auth   Authenticator
	store  SessionStore
	secret string
	ttl    time.Duration
}

func NewAuthService(auth Authenticator, store SessionStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{auth: auth, store: store, secret: secret, ttl: ttl}
}

func (s *AuthService) Login(ctx context.Context, login, password string) (*models.AdminSession, error) {
	if !s.auth.Authenticate(login, password) {
		return nil, ErrUnauthorized
	}

	sessionID := uuid.NewString()
	token, expires, err := utils.GenerateSessionToken(sessionID, login, s.ttl, s.secret)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, sessionID, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store admin session: %w", err)
	}

	return &models.AdminSession{
		ID:        sessionID,
		Login:     login,
		Token:     token,
		ExpiresAt: expires,
	}, nil
}

// Verify checks the token signature and that its session has not been logged out.
func (s *AuthService) Verify(ctx context.Context, token string) (*utils.SessionClaims, error) {
	claims, err := utils.ValidateToken(token, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	active, err := s.store.Exists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read admin session: %w", err)
	}
	if !active {
		return nil, ErrSessionExpired
	}
	return claims, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}
	return s.store.Delete(ctx, sessionID)
}
