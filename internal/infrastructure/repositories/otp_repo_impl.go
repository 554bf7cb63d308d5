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

// OTPRepository implements one-time password storage.
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository.
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Create stores a new OTP code.
func (r *OTPRepository) Create(ctx context.Context, otp *entities.OTP) error {
	m := &models.Otp{
		ID:        otp.ID,
		UserID:    otp.UserID,
		Code:      otp.Code,
		ExpiresAt: otp.ExpiresAt,
		Used:      otp.Used,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	otp.ID = m.ID
	otp.CreatedAt = m.CreatedAt
	return nil
}

// GetValid returns the newest unused, unexpired code for the user.
func (r *OTPRepository) GetValid(ctx context.Context, userID uuid.UUID, code string) (*entities.OTP, error) {
	var m models.Otp
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND code = ? AND used = ? AND expires_at > ?", userID, code, false, time.Now()).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.OTP{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		CreatedAt: m.CreatedAt,
	}, nil
}

// MarkAllUsed invalidates every outstanding unused code for the user.
func (r *OTPRepository) MarkAllUsed(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Otp{}).
		Where("user_id = ? AND used = ?", userID, false).
		Update("used", true).Error
}

// MarkUsed consumes a single code.
func (r *OTPRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Otp{}).
		Where("id = ?", id).
		Update("used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
