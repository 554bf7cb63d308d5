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

// RequestRepository implements request persistence.
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository.
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func preloadRequestTree(db *gorm.DB) *gorm.DB {
	return preloadFieldTreeFor(db.Preload("Creator"), "FormTemplate")
}

// preloadFieldTreeFor preloads the form template field tree rooted at the
// given association path.
func preloadFieldTreeFor(db *gorm.DB, root string) *gorm.DB {
	return db.
		Preload(root).
		Preload(root+".Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload(root+".Fields.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload(root + ".Fields.Validations")
}

// Create inserts a request.
func (r *RequestRepository) Create(ctx context.Context, request *entities.Request) error {
	m := &models.Request{
		ID:             request.ID,
		CreatorID:      request.CreatorID,
		FormTemplateID: request.FormTemplateID,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	request.ID = m.ID
	request.CreatedAt = m.CreatedAt
	request.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID loads a request with its creator summary and full template tree.
func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Request, error) {
	var m models.Request
	err := preloadRequestTree(GetDB(ctx, r.db).WithContext(ctx)).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return requestToEntity(&m), nil
}

// List returns requests matching the filter, newest first. Zero filter
// values match everything.
func (r *RequestRepository) List(ctx context.Context, filter entities.RequestFilter) ([]*entities.Request, error) {
	db := preloadRequestTree(GetDB(ctx, r.db).WithContext(ctx))
	if filter.CreatorID != uuid.Nil {
		db = db.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.FormTemplateID != uuid.Nil {
		db = db.Where("form_template_id = ?", filter.FormTemplateID)
	}

	var requestModels []models.Request
	if err := db.Order("created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]*entities.Request, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, requestToEntity(&requestModels[i]))
	}
	return requests, nil
}

// Update rewrites the request columns.
func (r *RequestRepository) Update(ctx context.Context, request *entities.Request) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Request{}).
		Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"creator_id":       request.CreatorID,
			"form_template_id": request.FormTemplateID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a request.
func (r *RequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Request{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of requests.
func (r *RequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Request{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func requestToEntity(m *models.Request) *entities.Request {
	req := &entities.Request{
		ID:             m.ID,
		CreatorID:      m.CreatorID,
		FormTemplateID: m.FormTemplateID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Creator != nil {
		req.Creator = &entities.UserSummary{
			ID:       m.Creator.ID,
			Email:    m.Creator.Email,
			Username: m.Creator.Username,
		}
	}
	if m.FormTemplate != nil {
		req.FormTemplate = formTemplateToEntity(m.FormTemplate)
	}
	return req
}
