package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
)

// TokenRepository defines stored token-pair operations.
type TokenRepository interface {
	Create(ctx context.Context, token *entities.Token) error
	GetByRefreshToken(ctx context.Context, refreshToken string) (*entities.Token, error)
	GetByAccessToken(ctx context.Context, accessToken string) (*entities.Token, error)
	// Update rewrites the token values and expiry of an existing row.
	Update(ctx context.Context, token *entities.Token) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByUserID removes every pair for the user. Not finding any is not
	// an error.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.TokenInfo, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
