package repositories

import (
	"context"

	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
)

// UserRepository defines user data operations.
type UserRepository interface {
	// Create inserts the user together with its nested profile and corporate
	// records. Callers wrap it in a UnitOfWork when atomicity matters.
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// FindByEmailOrUsername returns every user colliding with either value.
	// The check is advisory; the unique indexes are the real guard.
	FindByEmailOrUsername(ctx context.Context, email, username string) ([]*entities.User, error)
	// GetWithProfile eager-loads the profile and corporate records.
	GetWithProfile(ctx context.Context, id uuid.UUID) (*entities.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}

// OTPRepository defines password-reset code operations.
type OTPRepository interface {
	Create(ctx context.Context, otp *entities.OTP) error
	// GetValid returns the matching unused, unexpired code, or ErrNotFound.
	GetValid(ctx context.Context, userID uuid.UUID, code string) (*entities.OTP, error)
	// MarkAllUsed invalidates every outstanding unused code for the user.
	MarkAllUsed(ctx context.Context, userID uuid.UUID) error
	MarkUsed(ctx context.Context, id uuid.UUID) error
}
