package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUserExists = errors.New("an account with this email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Login failures carry distinct messages (same 401 status) so the client can
// guide the user toward registration versus a retyped password.
var ErrUnknownEmail = errors.New("no account found with this email; please check your email or register for a new account")
var ErrWrongPassword = errors.New("incorrect password; please try again")
var ErrSamePassword = errors.New("new password must be different from the current password")
var ErrTokenExpired = errors.New("token expired")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// Name is a person's name as captured on registration and prospect intake.
type Name struct {
	FirstName string `json:"firstName" bson:"first_name"`
	LastName  string `json:"lastName" bson:"last_name"`
}

// User models a staff account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         Name      `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NormalizeEmail lowercases and trims an email address. All email comparison
// and storage goes through this so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PasswordPolicyError reports every strength rule a candidate password failed.
type PasswordPolicyError struct {
	Failures []string
}

func (e *PasswordPolicyError) Error() string {
	return fmt.Sprintf("password must %s", strings.Join(e.Failures, ", "))
}

// ValidatePassword checks the registration password policy: at least 8
// characters, one lowercase, one uppercase, one digit, one symbol from
// @$!%*?&, and nothing outside letters, digits, and that symbol set.
func ValidatePassword(password string) error {
	const symbols = "@$!%*?&"

	var failures []string
	if len(password) < 8 {
		failures = append(failures, "be at least 8 characters long")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		failures = append(failures, "contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		failures = append(failures, "contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		failures = append(failures, "contain at least one number")
	}
	if !strings.ContainsAny(password, symbols) {
		failures = append(failures, "contain at least one special character (@$!%*?&)")
	}
	if strings.ContainsFunc(password, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		}
		return !strings.ContainsRune(symbols, r)
	}) {
		failures = append(failures, "contain only letters, numbers, and @$!%*?& characters")
	}

	if len(failures) > 0 {
		return &PasswordPolicyError{Failures: failures}
	}
	return nil
}
