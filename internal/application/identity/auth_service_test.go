package identity

import (
	"context"
	"testing"
	"time"

	"github.com/osworks/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCredentialVerifier is a mock implementation of CredentialVerifier
type MockCredentialVerifier struct {
	mock.Mock
}

func (m *MockCredentialVerifier) Verify(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(username string) (string, time.Time, error) {
	args := m.Called(username)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		verifier := new(MockCredentialVerifier)
		issuer := new(MockTokenIssuer)
		service := NewAuthService(verifier, issuer)

		expiresAt := time.Now().Add(time.Hour)
		verifier.On("Verify", ctx, "admin", "s3cret").Return(nil)
		issuer.On("Issue", "admin").Return("token-123", expiresAt, nil)

		resp, err := service.Login(ctx, LoginRequest{Username: " admin ", Password: "s3cret"})

		require.NoError(t, err)
		assert.Equal(t, "token-123", resp.Token)
		assert.Equal(t, expiresAt, resp.ExpiresAt)
	})

	t.Run("bad credentials surface as unauthorized", func(t *testing.T) {
		verifier := new(MockCredentialVerifier)
		issuer := new(MockTokenIssuer)
		service := NewAuthService(verifier, issuer)

		verifier.On("Verify", ctx, "admin", "wrong").Return(shared.ErrUnauthorized)

		_, err := service.Login(ctx, LoginRequest{Username: "admin", Password: "wrong"})

		assert.ErrorIs(t, err, shared.ErrUnauthorized)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("blank fields are rejected without hitting the store", func(t *testing.T) {
		verifier := new(MockCredentialVerifier)
		service := NewAuthService(verifier, new(MockTokenIssuer))

		_, err := service.Login(ctx, LoginRequest{Username: "  ", Password: nil})

		assert.ErrorIs(t, err, shared.ErrUnauthorized)
		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
	})
}
