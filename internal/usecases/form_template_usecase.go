package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/domain/repositories"
)

// FormTemplateUsecase handles dynamic form template definitions.
type FormTemplateUsecase struct {
	templateRepo repositories.FormTemplateRepository
	uow          repositories.UnitOfWork
}

// NewFormTemplateUsecase creates a new form template usecase.
func NewFormTemplateUsecase(
	templateRepo repositories.FormTemplateRepository,
	uow repositories.UnitOfWork,
) *FormTemplateUsecase {
	return &FormTemplateUsecase{templateRepo: templateRepo, uow: uow}
}

// Create inserts a template with its whole field tree in one transaction.
func (u *FormTemplateUsecase) Create(ctx context.Context, input *entities.CreateFormTemplateInput) (*entities.FormTemplate, error) {
	template := &entities.FormTemplate{
		Name:     input.Name,
		IsActive: true,
		Version:  1,
		Fields:   fieldsFromInputs(input.Fields),
	}
	if input.Description != nil {
		template.Description = null.StringFrom(*input.Description)
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}
	if input.Version != nil {
		template.Version = *input.Version
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.templateRepo.Create(txCtx, template)
	})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return u.GetByID(ctx, template.ID)
}

// List returns every template with its full tree, newest first.
func (u *FormTemplateUsecase) List(ctx context.Context) ([]*entities.FormTemplate, error) {
	templates, err := u.templateRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return templates, nil
}

// GetByID returns one template with its ordered field tree.
func (u *FormTemplateUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.FormTemplate, error) {
	template, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("form template not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return template, nil
}

// Update applies a partial update. A supplied field list replaces the whole
// stored tree; scalars and the tree swap happen in one transaction.
func (u *FormTemplateUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateFormTemplateInput) (*entities.FormTemplate, error) {
	template, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("form template not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if input.Name != nil {
		template.Name = *input.Name
	}
	if input.Description != nil {
		template.Description = null.StringFrom(*input.Description)
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}
	if input.Version != nil {
		template.Version = *input.Version
	}

	replaceFields := input.Fields != nil
	if replaceFields {
		template.Fields = fieldsFromInputs(input.Fields)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.templateRepo.Update(txCtx, template, replaceFields)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("form template not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return u.GetByID(ctx, id)
}

// Delete removes a template and its field tree.
func (u *FormTemplateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.templateRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("form template not found")
		}
		return domainerrors.InternalError(err)
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.templateRepo.Delete(txCtx, id)
	})
	if err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

func fieldsFromInputs(inputs []entities.FormFieldInput) []entities.FormField {
	fields := make([]entities.FormField, 0, len(inputs))
	for _, in := range inputs {
		field := entities.FormField{
			Key:       in.Key,
			Label:     in.Label,
			FieldType: in.FieldType,
			Order:     in.Order,
			Width:     in.Width,
		}
		if field.Width == "" {
			field.Width = "full"
		}
		if in.Placeholder != nil {
			field.Placeholder = null.StringFrom(*in.Placeholder)
		}
		if in.DefaultValue != nil {
			field.DefaultValue = null.StringFrom(*in.DefaultValue)
		}
		if in.Answer != nil {
			field.Answer = null.StringFrom(*in.Answer)
		}
		if in.HelpText != nil {
			field.HelpText = null.StringFrom(*in.HelpText)
		}
		for _, opt := range in.Options {
			field.Options = append(field.Options, entities.FieldOption{
				Label:     opt.Label,
				Value:     opt.Value,
				Order:     opt.Order,
				IsDefault: opt.IsDefault,
			})
		}
		for _, v := range in.Validations {
			validation := entities.FieldValidation{
				RuleType:     v.RuleType,
				ErrorMessage: v.ErrorMessage,
			}
			if v.Value != nil {
				validation.Value = null.StringFrom(*v.Value)
			}
			field.Validations = append(field.Validations, validation)
		}
		fields = append(fields, field)
	}
	return fields
}
