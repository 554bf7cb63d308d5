package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform account. Accounts are deactivated, never
// hard-deleted.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	Profile      *Profile  `json:"profile,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile holds the personal details attached to a user.
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	FullName  string     `json:"fullName"`
	Corporate *Corporate `json:"corporate,omitempty"`
}

// Corporate holds the company details attached to a profile.
type Corporate struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profileId"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
}

// UserSummary is the minimal user view embedded in other resources.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

// RegisterInput represents input for user registration.
type RegisterInput struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	FullName      string `json:"fullName" binding:"required"`
	CorporateName string `json:"corporateName" binding:"required"`
	Designation   string `json:"designation" binding:"required"`
	Username      string `json:"username" binding:"required"`
}

// LoginInput represents input for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordInput starts the OTP password-reset flow.
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPInput checks a reset code without consuming it.
type VerifyOTPInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResetPasswordInput consumes a reset code and replaces the password.
type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
