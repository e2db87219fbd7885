package identity

import (
	"context"
	"fmt"
)

// AuthErrorCategory classifies authentication failures reported by a
// credential provider
type AuthErrorCategory string

const (
	// CategoryCredentialsSignin marks a rejected email/password pair
	CategoryCredentialsSignin AuthErrorCategory = "CredentialsSignin"
	// CategoryCallback marks a failure in the provider's own flow
	CategoryCallback AuthErrorCategory = "CallbackRouteError"
)

// AuthError is an authentication failure originating from a credential
// provider. Failures that are not AuthError (infrastructure faults) are not
// the provider's to classify and must propagate to the caller unchanged.
type AuthError struct {
	Category AuthErrorCategory
	Err      error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error (%s): %v", e.Category, e.Err)
	}
	return fmt.Sprintf("auth error (%s)", e.Category)
}

// Unwrap returns the underlying cause
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a classified authentication error
func NewAuthError(category AuthErrorCategory, err error) *AuthError {
	return &AuthError{Category: category, Err: err}
}

// Credentials is the raw email/password pair submitted by the login form
type Credentials struct {
	Email    string
	Password string
}

// CredentialVerifier is the identity-provider abstraction. Verify returns the
// authenticated user, an *AuthError for provider-classified failures, or any
// other error for infrastructure faults.
type CredentialVerifier interface {
	Verify(ctx context.Context, creds Credentials) (*User, error)
}

// UserRepository defines the persistence contract for users
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}
