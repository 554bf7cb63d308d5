package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user with its nested profile and corporate records.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Profile != nil {
		if m.Profile.ID == uuid.Nil {
			m.Profile.ID = uuid.New()
		}
		m.Profile.UserID = m.ID
		if m.Profile.Corporate != nil {
			if m.Profile.Corporate.ID == uuid.Nil {
				m.Profile.Corporate.ID = uuid.New()
			}
			m.Profile.Corporate.ProfileID = m.Profile.ID
		}
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	if user.Profile != nil {
		user.Profile.ID = m.Profile.ID
		user.Profile.UserID = m.ID
		if user.Profile.Corporate != nil {
			user.Profile.Corporate.ID = m.Profile.Corporate.ID
			user.Profile.Corporate.ProfileID = m.Profile.ID
		}
	}
	return nil
}

// GetByID gets a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// FindByEmailOrUsername returns every user colliding with either value.
func (r *UserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) ([]*entities.User, error) {
	var userModels []models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("email = ? OR username = ?", email, username).
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// GetWithProfile loads a user with its profile and corporate records.
func (r *UserRepository) GetWithProfile(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Profile").
		Preload("Profile.Corporate").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func userToModel(u *entities.User) *models.User {
	m := &models.User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
	}
	if u.Profile != nil {
		m.Profile = &models.Profile{
			ID:       u.Profile.ID,
			UserID:   u.ID,
			FullName: u.Profile.FullName,
		}
		if u.Profile.Corporate != nil {
			m.Profile.Corporate = &models.Corporate{
				ID:          u.Profile.Corporate.ID,
				Name:        u.Profile.Corporate.Name,
				Designation: u.Profile.Corporate.Designation,
			}
		}
	}
	return m
}

func userToEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Profile != nil {
		u.Profile = &entities.Profile{
			ID:       m.Profile.ID,
			UserID:   m.Profile.UserID,
			FullName: m.Profile.FullName,
		}
		if m.Profile.Corporate != nil {
			u.Profile.Corporate = &entities.Corporate{
				ID:          m.Profile.Corporate.ID,
				ProfileID:   m.Profile.Corporate.ProfileID,
				Name:        m.Profile.Corporate.Name,
				Designation: m.Profile.Corporate.Designation,
			}
		}
	}
	return u
}
