package identity

import (
	"context"
	"errors"

	"github.com/acme/dashboard/internal/domain/identity"
	"github.com/acme/dashboard/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer mints an access token for an authenticated user.
type TokenIssuer interface {
	Issue(user *identity.User) (string, error)
}

// Session is the result of a successful sign-in.
type Session struct {
	Token string
	User  *identity.User
}

// AuthService verifies credentials and issues sessions.
type AuthService struct {
	verifier identity.CredentialVerifier
	issuer   TokenIssuer
	logger   *zap.Logger
}

func NewAuthService(verifier identity.CredentialVerifier, issuer TokenIssuer, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{verifier: verifier, issuer: issuer, logger: logger}
}

// Authenticate verifies the credentials and returns a session on success.
// Rejected credentials come back as a single generic message so the form
// never leaks whether the email or the password was wrong. Failures outside
// the auth flow (storage down, token signing) propagate unchanged.
func (s *AuthService) Authenticate(ctx context.Context, creds identity.Credentials) (*Session, error) {
	user, err := s.verifier.Verify(ctx, creds)
	if err != nil {
		var authErr *identity.AuthError
		if errors.As(err, &authErr) {
			if authErr.Category == identity.CategoryCredentialsSignin {
				return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid credentials.")
			}
			s.logger.Error("Sign-in failed",
				zap.String("category", string(authErr.Category)),
				zap.Error(authErr))
			return nil, shared.NewDomainError("AUTH_ERROR", "Something went wrong.")
		}
		return nil, err
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}
