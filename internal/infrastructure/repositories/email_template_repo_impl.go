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

// EmailTemplateRepository implements email template persistence.
type EmailTemplateRepository struct {
	db *gorm.DB
}

// NewEmailTemplateRepository creates a new email template repository.
func NewEmailTemplateRepository(db *gorm.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{db: db}
}

// Create inserts a new template.
func (r *EmailTemplateRepository) Create(ctx context.Context, template *entities.EmailTemplate) error {
	m := emailTemplateToModel(template)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	template.ID = m.ID
	template.CreatedAt = m.CreatedAt
	template.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID finds a template by ID.
func (r *EmailTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.EmailTemplate, error) {
	var m models.EmailTemplate
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return emailTemplateToEntity(&m), nil
}

// GetByKey finds a template by its unique key.
func (r *EmailTemplateRepository) GetByKey(ctx context.Context, key string) (*entities.EmailTemplate, error) {
	var m models.EmailTemplate
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return emailTemplateToEntity(&m), nil
}

// List returns all templates, newest first.
func (r *EmailTemplateRepository) List(ctx context.Context) ([]*entities.EmailTemplate, error) {
	var templateModels []models.EmailTemplate
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Find(&templateModels).Error
	if err != nil {
		return nil, err
	}

	templates := make([]*entities.EmailTemplate, 0, len(templateModels))
	for i := range templateModels {
		templates = append(templates, emailTemplateToEntity(&templateModels[i]))
	}
	return templates, nil
}

// Update rewrites the template columns.
func (r *EmailTemplateRepository) Update(ctx context.Context, template *entities.EmailTemplate) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.EmailTemplate{}).
		Where("id = ?", template.ID).
		Updates(map[string]interface{}{
			"key":     template.Key,
			"subject": template.Subject,
			"content": template.Content,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a template.
func (r *EmailTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.EmailTemplate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func emailTemplateToModel(t *entities.EmailTemplate) *models.EmailTemplate {
	return &models.EmailTemplate{
		ID:      t.ID,
		Key:     t.Key,
		Subject: t.Subject,
		Content: t.Content,
	}
}

func emailTemplateToEntity(m *models.EmailTemplate) *entities.EmailTemplate {
	return &entities.EmailTemplate{
		ID:        m.ID,
		Key:       m.Key,
		Subject:   m.Subject,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
