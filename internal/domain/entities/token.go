package entities

import (
	"time"

	"github.com/google/uuid"
)

// Token is a persisted access/refresh pair. At most one live pair exists per
// user: saving a new pair first deletes the previous ones.
type Token struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Revoked      bool      `json:"revoked"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TokenInfo is the listing view of a stored token (values withheld).
type TokenInfo struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RefreshInput carries the refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshResponse is returned after a successful token rotation.
type RefreshResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *UserSummary `json:"user"`
}

// OTP is a single-use password-reset code, valid for ten minutes.
type OTP struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"createdAt"`
}

// Valid reports whether the code can still authorize a reset.
func (o *OTP) Valid(now time.Time) bool {
	return !o.Used && now.Before(o.ExpiresAt)
}
