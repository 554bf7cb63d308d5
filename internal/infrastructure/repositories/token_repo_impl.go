package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/infrastructure/models"
)

// TokenRepository implements refresh token persistence.
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository.
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create stores a new token pair row.
func (r *TokenRepository) Create(ctx context.Context, token *entities.Token) error {
	m := tokenToModel(token)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	token.ID = m.ID
	token.CreatedAt = m.CreatedAt
	return nil
}

// GetByRefreshToken finds a token row by its refresh token string.
func (r *TokenRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*entities.Token, error) {
	var m models.Token
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tokenToEntity(&m), nil
}

// GetByAccessToken finds a token row by its access token string.
func (r *TokenRepository) GetByAccessToken(ctx context.Context, accessToken string) (*entities.Token, error) {
	var m models.Token
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("access_token = ?", accessToken).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tokenToEntity(&m), nil
}

// Update rewrites the token strings and expiry on an existing row.
func (r *TokenRepository) Update(ctx context.Context, token *entities.Token) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Token{}).
		Where("id = ?", token.ID).
		Updates(map[string]interface{}{
			"access_token":  token.AccessToken,
			"refresh_token": token.RefreshToken,
			"expires_at":    token.ExpiresAt,
			"revoked":       token.Revoked,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a single token row.
func (r *TokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Token{}).Error
}

// DeleteByUserID removes every token row belonging to the user.
func (r *TokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Token{}).Error
}

// ListByUserID returns session metadata for the user, newest first.
func (r *TokenRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.TokenInfo, error) {
	var tokenModels []models.Token
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tokenModels).Error
	if err != nil {
		return nil, err
	}

	infos := make([]*entities.TokenInfo, 0, len(tokenModels))
	for i := range tokenModels {
		infos = append(infos, &entities.TokenInfo{
			ID:        tokenModels[i].ID,
			CreatedAt: tokenModels[i].CreatedAt,
			ExpiresAt: tokenModels[i].ExpiresAt,
		})
	}
	return infos, nil
}

// DeleteExpired removes every row past its expiry and reports how many.
func (r *TokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.Token{})
	return result.RowsAffected, result.Error
}

func tokenToModel(t *entities.Token) *models.Token {
	return &models.Token{
		ID:           t.ID,
		UserID:       t.UserID,
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    t.ExpiresAt,
		Revoked:      t.Revoked,
	}
}

func tokenToEntity(m *models.Token) *entities.Token {
	return &entities.Token{
		ID:           m.ID,
		UserID:       m.UserID,
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		ExpiresAt:    m.ExpiresAt,
		Revoked:      m.Revoked,
		CreatedAt:    m.CreatedAt,
	}
}
