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

// FormTemplateRepository implements form template persistence with its full
// field/option/validation tree.
type FormTemplateRepository struct {
	db *gorm.DB
}

// NewFormTemplateRepository creates a new form template repository.
func NewFormTemplateRepository(db *gorm.DB) *FormTemplateRepository {
	return &FormTemplateRepository{db: db}
}

func preloadFieldTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Fields.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Fields.Validations")
}

// Create inserts a template with its whole field tree.
func (r *FormTemplateRepository) Create(ctx context.Context, template *entities.FormTemplate) error {
	m := formTemplateToModel(template)
	assignFormTemplateIDs(m)

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	copyFormTemplateBack(template, m)
	return nil
}

// GetByID loads a template with fields ordered by position, each field's
// options ordered by position, and its validations.
func (r *FormTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FormTemplate, error) {
	var m models.FormTemplate
	err := preloadFieldTree(GetDB(ctx, r.db).WithContext(ctx)).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return formTemplateToEntity(&m), nil
}

// List returns every template with its full tree, newest first.
func (r *FormTemplateRepository) List(ctx context.Context) ([]*entities.FormTemplate, error) {
	var templateModels []models.FormTemplate
	err := preloadFieldTree(GetDB(ctx, r.db).WithContext(ctx)).
		Order("created_at DESC").
		Find(&templateModels).Error
	if err != nil {
		return nil, err
	}

	templates := make([]*entities.FormTemplate, 0, len(templateModels))
	for i := range templateModels {
		templates = append(templates, formTemplateToEntity(&templateModels[i]))
	}
	return templates, nil
}

// Update rewrites the scalar columns and, when replaceFields is set, drops
// the whole field tree and reinserts the one on the entity.
func (r *FormTemplateRepository) Update(ctx context.Context, template *entities.FormTemplate, replaceFields bool) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.FormTemplate{}).
		Where("id = ?", template.ID).
		Updates(map[string]interface{}{
			"name":        template.Name,
			"description": template.Description,
			"is_active":   template.IsActive,
			"version":     template.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	if !replaceFields {
		return nil
	}

	if err := deleteFieldTree(db, template.ID); err != nil {
		return err
	}

	for i := range template.Fields {
		fm := formFieldToModel(&template.Fields[i])
		fm.ID = uuid.New()
		fm.TemplateID = template.ID
		for j := range fm.Options {
			fm.Options[j].ID = uuid.New()
			fm.Options[j].FieldID = fm.ID
		}
		for j := range fm.Validations {
			fm.Validations[j].ID = uuid.New()
			fm.Validations[j].FieldID = fm.ID
		}
		if err := db.Create(fm).Error; err != nil {
			return err
		}
		copyFormFieldBack(&template.Fields[i], fm)
	}
	return nil
}

// Delete removes a template and its field tree.
func (r *FormTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := deleteFieldTree(db, id); err != nil {
		return err
	}
	result := db.Where("id = ?", id).Delete(&models.FormTemplate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of templates.
func (r *FormTemplateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.FormTemplate{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func deleteFieldTree(db *gorm.DB, templateID uuid.UUID) error {
	var fieldIDs []uuid.UUID
	err := db.Model(&models.FormField{}).
		Where("template_id = ?", templateID).
		Pluck("id", &fieldIDs).Error
	if err != nil {
		return err
	}
	if len(fieldIDs) > 0 {
		if err := db.Where("field_id IN ?", fieldIDs).Delete(&models.FieldOption{}).Error; err != nil {
			return err
		}
		if err := db.Where("field_id IN ?", fieldIDs).Delete(&models.FieldValidation{}).Error; err != nil {
			return err
		}
	}
	return db.Where("template_id = ?", templateID).Delete(&models.FormField{}).Error
}

func assignFormTemplateIDs(m *models.FormTemplate) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	for i := range m.Fields {
		if m.Fields[i].ID == uuid.Nil {
			m.Fields[i].ID = uuid.New()
		}
		m.Fields[i].TemplateID = m.ID
		for j := range m.Fields[i].Options {
			if m.Fields[i].Options[j].ID == uuid.Nil {
				m.Fields[i].Options[j].ID = uuid.New()
			}
			m.Fields[i].Options[j].FieldID = m.Fields[i].ID
		}
		for j := range m.Fields[i].Validations {
			if m.Fields[i].Validations[j].ID == uuid.Nil {
				m.Fields[i].Validations[j].ID = uuid.New()
			}
			m.Fields[i].Validations[j].FieldID = m.Fields[i].ID
		}
	}
}

func copyFormTemplateBack(t *entities.FormTemplate, m *models.FormTemplate) {
	t.ID = m.ID
	t.CreatedAt = m.CreatedAt
	t.UpdatedAt = m.UpdatedAt
	for i := range t.Fields {
		copyFormFieldBack(&t.Fields[i], &m.Fields[i])
	}
}

func copyFormFieldBack(f *entities.FormField, m *models.FormField) {
	f.ID = m.ID
	f.TemplateID = m.TemplateID
	for j := range f.Options {
		f.Options[j].ID = m.Options[j].ID
		f.Options[j].FieldID = m.ID
	}
	for j := range f.Validations {
		f.Validations[j].ID = m.Validations[j].ID
		f.Validations[j].FieldID = m.ID
	}
}

func formTemplateToModel(t *entities.FormTemplate) *models.FormTemplate {
	m := &models.FormTemplate{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		Version:     t.Version,
	}
	for i := range t.Fields {
		m.Fields = append(m.Fields, *formFieldToModel(&t.Fields[i]))
	}
	return m
}

func formFieldToModel(f *entities.FormField) *models.FormField {
	m := &models.FormField{
		ID:           f.ID,
		TemplateID:   f.TemplateID,
		Key:          f.Key,
		Label:        f.Label,
		FieldType:    string(f.FieldType),
		Placeholder:  f.Placeholder,
		DefaultValue: f.DefaultValue,
		Answer:       f.Answer,
		HelpText:     f.HelpText,
		SortOrder:    f.Order,
		Width:        f.Width,
	}
	for i := range f.Options {
		m.Options = append(m.Options, models.FieldOption{
			ID:        f.Options[i].ID,
			Label:     f.Options[i].Label,
			Value:     f.Options[i].Value,
			SortOrder: f.Options[i].Order,
			IsDefault: f.Options[i].IsDefault,
		})
	}
	for i := range f.Validations {
		m.Validations = append(m.Validations, models.FieldValidation{
			ID:           f.Validations[i].ID,
			RuleType:     string(f.Validations[i].RuleType),
			Value:        f.Validations[i].Value,
			ErrorMessage: f.Validations[i].ErrorMessage,
		})
	}
	return m
}

func formTemplateToEntity(m *models.FormTemplate) *entities.FormTemplate {
	t := &entities.FormTemplate{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		Version:     m.Version,
		Fields:      make([]entities.FormField, 0, len(m.Fields)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Fields {
		t.Fields = append(t.Fields, *formFieldToEntity(&m.Fields[i]))
	}
	return t
}

func formFieldToEntity(m *models.FormField) *entities.FormField {
	f := &entities.FormField{
		ID:           m.ID,
		TemplateID:   m.TemplateID,
		Key:          m.Key,
		Label:        m.Label,
		FieldType:    entities.FieldType(m.FieldType),
		Placeholder:  m.Placeholder,
		DefaultValue: m.DefaultValue,
		Answer:       m.Answer,
		HelpText:     m.HelpText,
		Order:        m.SortOrder,
		Width:        m.Width,
		Options:      make([]entities.FieldOption, 0, len(m.Options)),
		Validations:  make([]entities.FieldValidation, 0, len(m.Validations)),
	}
	for i := range m.Options {
		f.Options = append(f.Options, entities.FieldOption{
			ID:        m.Options[i].ID,
			FieldID:   m.Options[i].FieldID,
			Label:     m.Options[i].Label,
			Value:     m.Options[i].Value,
			Order:     m.Options[i].SortOrder,
			IsDefault: m.Options[i].IsDefault,
		})
	}
	for i := range m.Validations {
		f.Validations = append(f.Validations, entities.FieldValidation{
			ID:           m.Validations[i].ID,
			FieldID:      m.Validations[i].FieldID,
			RuleType:     entities.ValidationRuleType(m.Validations[i].RuleType),
			Value:        m.Validations[i].Value,
			ErrorMessage: m.Validations[i].ErrorMessage,
		})
	}
	return f
}
