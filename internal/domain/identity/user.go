package identity

import (
	"regexp"
	"strings"

	"github.com/acme/dashboard/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

const passwordMinLength = 6

// User represents a dashboard operator account. It is the credential holder
// backing the login form.
type User struct {
	shared.BaseEntity
	Name         string
	Email        string
	PasswordHash string
}

// NewUser creates a new user with a hashed password
func NewUser(name, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateUserEmail(email); err != nil {
		return nil, err
	}
	if len(password) < passwordMinLength {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func validateUserEmail(email string) error {
	if !userEmailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

var userEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
