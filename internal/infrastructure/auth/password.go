package auth

import (
	"context"
	"crypto/subtle"

	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/infrastructure/config"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of a password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ConfigCredentialStore verifies credentials against the single user pair
// from configuration. The bcrypt hash takes precedence; the plaintext
// password form exists for development setups only and is rejected by config
// validation in production.
type ConfigCredentialStore struct {
	username     string
	password     string
	passwordHash string
}

// NewConfigCredentialStore creates a credential store from config
func NewConfigCredentialStore(cfg config.AuthConfig) *ConfigCredentialStore {
	return &ConfigCredentialStore{
		username:     cfg.Username,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
	}
}

// Verify checks the username/password pair.
func (s *ConfigCredentialStore) Verify(_ context.Context, username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return shared.ErrUnauthorized
	}
	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return shared.ErrUnauthorized
		}
		return nil
	}
	if s.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return shared.ErrUnauthorized
	}
	return nil
}
