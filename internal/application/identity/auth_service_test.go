package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/acme/dashboard/internal/domain/identity"
	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(ctx context.Context, creds identity.Credentials) (*identity.User, error) {
	args := m.Called(ctx, creds)
	if u := args.Get(0); u != nil {
		return u.(*identity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) Issue(user *identity.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func creds() identity.Credentials {
	return identity.Credentials{Email: "admin@example.com", Password: "secret123"}
}

func TestAuthenticate_Success(t *testing.T) {
	verifier := new(mockVerifier)
	issuer := new(mockIssuer)
	service := NewAuthService(verifier, issuer, nil)

	user, err := identity.NewUser("Admin", "admin@example.com", "secret123")
	require.NoError(t, err)

	verifier.On("Verify", mock.Anything, creds()).Return(user, nil)
	issuer.On("Issue", user).Return("signed-token", nil)

	session, err := service.Authenticate(context.Background(), creds())

	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, user, session.User)
}

func TestAuthenticate_RejectedCredentials(t *testing.T) {
	verifier := new(mockVerifier)
	service := NewAuthService(verifier, new(mockIssuer), nil)

	verifier.On("Verify", mock.Anything, mock.Anything).
		Return(nil, identity.NewAuthError(identity.CategoryCredentialsSignin, errors.New("password mismatch")))

	session, err := service.Authenticate(context.Background(), creds())

	assert.Nil(t, session)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	assert.Equal(t, "Invalid credentials.", domainErr.Message)
}

func TestAuthenticate_OtherAuthFailure(t *testing.T) {
	verifier := new(mockVerifier)
	service := NewAuthService(verifier, new(mockIssuer), nil)

	verifier.On("Verify", mock.Anything, mock.Anything).
		Return(nil, identity.NewAuthError(identity.CategoryCallback, errors.New("provider broke")))

	_, err := service.Authenticate(context.Background(), creds())

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "AUTH_ERROR", domainErr.Code)
	assert.Equal(t, "Something went wrong.", domainErr.Message)
}

func TestAuthenticate_InfrastructureFaultPropagates(t *testing.T) {
	verifier := new(mockVerifier)
	service := NewAuthService(verifier, new(mockIssuer), nil)

	cause := errors.New("storage down")
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil, cause)

	_, err := service.Authenticate(context.Background(), creds())

	// not wrapped into a domain error
	assert.ErrorIs(t, err, cause)
	var domainErr *shared.DomainError
	assert.False(t, errors.As(err, &domainErr))
}

func TestAuthenticate_IssuerFailurePropagates(t *testing.T) {
	verifier := new(mockVerifier)
	issuer := new(mockIssuer)
	service := NewAuthService(verifier, issuer, nil)

	user, err := identity.NewUser("Admin", "admin@example.com", "secret123")
	require.NoError(t, err)

	verifier.On("Verify", mock.Anything, mock.Anything).Return(user, nil)
	cause := errors.New("bad key")
	issuer.On("Issue", user).Return("", cause)

	_, err = service.Authenticate(context.Background(), creds())

	assert.ErrorIs(t, err, cause)
}
