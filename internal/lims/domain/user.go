package domain

import (
	"net/mail"
	"strings"
	"time"
)

const MinPasswordLength = 8

type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string // argon2 encoded
	Role         Role
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegistration checks the fields a new account needs before it is stored.
func ValidateRegistration(email, displayName, password string) error {
	v := &ValidationError{}
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		v.Add("email", "must be a valid email address")
	}
	if strings.TrimSpace(displayName) == "" {
		v.Add("displayName", "is required")
	}
	if len(password) < MinPasswordLength {
		v.Add("password", "must be at least 8 characters")
	}
	return v.Err()
}
