package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/domain/repositories"
	"tredora.backend/pkg/jwt"
	"tredora.backend/pkg/logger"
)

// storedTokenLifetime is how long a persisted pair stays presentable. The
// stored expiry governs refresh eligibility independently of the signed
// refresh lifetime.
const storedTokenLifetime = 7 * 24 * time.Hour

// TokenUsecase manages persisted token pairs and their rotation.
type TokenUsecase struct {
	tokenRepo  repositories.TokenRepository
	userRepo   repositories.UserRepository
	jwtService *jwt.Service
}

// NewTokenUsecase creates a new token usecase.
func NewTokenUsecase(
	tokenRepo repositories.TokenRepository,
	userRepo repositories.UserRepository,
	jwtService *jwt.Service,
) *TokenUsecase {
	return &TokenUsecase{
		tokenRepo:  tokenRepo,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// SaveTokens persists a pair for the user, replacing any previous ones so at
// most one live pair exists per user.
func (u *TokenUsecase) SaveTokens(ctx context.Context, userID uuid.UUID, pair *jwt.TokenPair) error {
	if err := u.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return u.tokenRepo.Create(ctx, &entities.Token{
		UserID:       userID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    time.Now().Add(storedTokenLifetime),
	})
}

// RefreshTokens rotates the pair identified by the presented refresh token.
// An unknown token is rejected; an expired one is deleted first so a retry
// fails the same way.
func (u *TokenUsecase) RefreshTokens(ctx context.Context, refreshToken string) (*entities.RefreshResponse, error) {
	stored, err := u.tokenRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid refresh token")
		}
		return nil, domainerrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		if err := u.tokenRepo.Delete(ctx, stored.ID); err != nil {
			logger.Error(ctx, "failed to delete expired token",
				zap.String("token_id", stored.ID.String()),
				zap.Error(err),
			)
		}
		return nil, domainerrors.Unauthorized("refresh token expired")
	}

	user, err := u.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid refresh token")
		}
		return nil, domainerrors.InternalError(err)
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	stored.AccessToken = pair.AccessToken
	stored.RefreshToken = pair.RefreshToken
	stored.ExpiresAt = time.Now().Add(storedTokenLifetime)
	if err := u.tokenRepo.Update(ctx, stored); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User: &entities.UserSummary{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
		},
	}, nil
}

// ValidateAccessToken verifies the signature and returns the claims.
func (u *TokenUsecase) ValidateAccessToken(ctx context.Context, accessToken string) (*jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(accessToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.Unauthorized("token expired")
		}
		return nil, domainerrors.Unauthorized("invalid token")
	}
	return claims, nil
}

// RevokeTokens deletes every stored pair for the user.
func (u *TokenUsecase) RevokeTokens(ctx context.Context, userID uuid.UUID) error {
	if err := u.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// GetUserTokens lists the user's stored sessions, values withheld.
func (u *TokenUsecase) GetUserTokens(ctx context.Context, userID uuid.UUID) ([]*entities.TokenInfo, error) {
	infos, err := u.tokenRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return infos, nil
}

// CleanExpiredTokens removes every stored pair past its expiry.
func (u *TokenUsecase) CleanExpiredTokens(ctx context.Context) (int64, error) {
	removed, err := u.tokenRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, domainerrors.InternalError(err)
	}
	return removed, nil
}
