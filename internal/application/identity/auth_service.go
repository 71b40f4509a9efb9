package identity

import (
	"context"
	"time"

	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/domain/shared/normalize"
)

// CredentialVerifier checks a username/password pair against the configured
// credential store.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) error
}

// TokenIssuer mints a signed access token for an authenticated user.
type TokenIssuer interface {
	Issue(username string) (token string, expiresAt time.Time, err error)
}

// LoginRequest carries the loose login fields.
type LoginRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

// TokenResponse is the issued access token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService handles login.
type AuthService struct {
	verifier CredentialVerifier
	issuer   TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(verifier CredentialVerifier, issuer TokenIssuer) *AuthService {
	return &AuthService{verifier: verifier, issuer: issuer}
}

// Login verifies the credentials and issues an access token. Bad credentials
// and unknown users both surface as ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	username := normalize.Text(req.Username)
	password := normalize.Text(req.Password)
	if username == nil || password == nil {
		return nil, shared.ErrUnauthorized
	}
	if err := s.verifier.Verify(ctx, *username, *password); err != nil {
		return nil, shared.ErrUnauthorized
	}
	token, expiresAt, err := s.issuer.Issue(*username)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
