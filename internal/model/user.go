package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel display names for the identity fallback chain.
const (
	UnknownCreatorName = "Unknown Creator"
	UnknownUserName    = "Unknown User"
	AnonymousUserName  = "Anonymous User"
)

// User is an account as the auth layer sees it.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserInfo is the profile row attached to an account. All fields except
// the id are optional free text.
type UserInfo struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Organization string    `json:"organization,omitempty"`
	Bio          string    `json:"bio,omitempty"`
}

// DisplayName resolves a user's display name through the required
// fallback chain: "first last" -> email -> the given sentinel. The
// chain is an observable contract, not a presentation nicety.
func DisplayName(firstName, lastName, email, sentinel string) string {
	full := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if full != "" {
		return full
	}
	if email = strings.TrimSpace(email); email != "" {
		return email
	}
	return sentinel
}

// DisplayName resolves the profile's own display name with the generic
// user sentinel.
func (u *UserInfo) DisplayName() string {
	return DisplayName(u.FirstName, u.LastName, u.Email, UnknownUserName)
}

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FirstName    string `json:"first_name" binding:"max=100"`
	LastName     string `json:"last_name" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
	Organization string `json:"organization" binding:"max=200"`
	Bio          string `json:"bio" binding:"max=2000"`
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the payload for editing the caller's profile.
type UpdateProfileRequest struct {
	FirstName    string `json:"first_name" binding:"max=100"`
	LastName     string `json:"last_name" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
	Organization string `json:"organization" binding:"max=200"`
	Bio          string `json:"bio" binding:"max=2000"`
}
