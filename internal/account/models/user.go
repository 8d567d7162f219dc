package models

import (
	"strings"
	"time"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/validation"
)

// User is a registered account. PasswordHash never leaves the service.
type User struct {
	ID           id.UserID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser builds a user from already normalized input.
func NewUser(userID id.UserID, username, email, passwordHash string, now time.Time) (*User, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user id is required")
	}
	if username == "" || email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "username and email are required")
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password hash is required")
	}
	return &User{
		ID:           userID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}, nil
}

// RegisterInput is the body of POST /api/auth/register.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Normalize trims the username and lowercases the email. The password is
// taken verbatim.
func (in *RegisterInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in *RegisterInput) Validate() error {
	if len(in.Password) > validation.MaxPasswordLength {
		return dErrors.New(dErrors.CodeValidation, "password must be at most 72 bytes")
	}
	return validation.Struct(in)
}

// LoginInput is the body of POST /api/auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in *LoginInput) Validate() error {
	return validation.Struct(in)
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User        *User     `json:"user"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
