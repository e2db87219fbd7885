package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/acme/dashboard/internal/domain/identity"
	"github.com/acme/dashboard/internal/domain/shared"
)

// BcryptCredentialVerifier checks submitted credentials against the stored
// bcrypt hash. A missing user and a wrong password are indistinguishable to
// the caller.
type BcryptCredentialVerifier struct {
	users identity.UserRepository
}

func NewBcryptCredentialVerifier(users identity.UserRepository) *BcryptCredentialVerifier {
	return &BcryptCredentialVerifier{users: users}
}

// Verify implements identity.CredentialVerifier. Rejections come back as a
// CredentialsSignin auth error; storage faults propagate unchanged.
func (v *BcryptCredentialVerifier) Verify(ctx context.Context, creds identity.Credentials) (*identity.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, identity.NewAuthError(identity.CategoryCredentialsSignin, errors.New("missing credentials"))
	}

	user, err := v.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.NewAuthError(identity.CategoryCredentialsSignin, errors.New("unknown user"))
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if !user.VerifyPassword(creds.Password) {
		return nil, identity.NewAuthError(identity.CategoryCredentialsSignin, errors.New("password mismatch"))
	}
	return user, nil
}
