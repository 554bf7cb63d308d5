package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/domain/repositories"
)

// EmailTemplateUsecase handles reusable email templates and their rendering.
type EmailTemplateUsecase struct {
	templateRepo repositories.EmailTemplateRepository
}

// NewEmailTemplateUsecase creates a new email template usecase.
func NewEmailTemplateUsecase(templateRepo repositories.EmailTemplateRepository) *EmailTemplateUsecase {
	return &EmailTemplateUsecase{templateRepo: templateRepo}
}

// Create adds a template after checking the key is free.
func (u *EmailTemplateUsecase) Create(ctx context.Context, input *entities.CreateEmailTemplateInput) (*entities.EmailTemplate, error) {
	if _, err := u.templateRepo.GetByKey(ctx, input.Key); err == nil {
		return nil, domainerrors.Conflict("email template with this key already exists")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	template := &entities.EmailTemplate{
		Key:     input.Key,
		Subject: input.Subject,
		Content: input.Content,
	}
	if err := u.templateRepo.Create(ctx, template); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return template, nil
}

// List returns every template, newest first.
func (u *EmailTemplateUsecase) List(ctx context.Context) ([]*entities.EmailTemplate, error) {
	templates, err := u.templateRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return templates, nil
}

// GetByID returns one template.
func (u *EmailTemplateUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.EmailTemplate, error) {
	template, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("email template not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return template, nil
}

// GetByKey returns the template addressed by its unique key.
func (u *EmailTemplateUsecase) GetByKey(ctx context.Context, key string) (*entities.EmailTemplate, error) {
	template, err := u.templateRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("email template not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return template, nil
}

// Update applies a partial update; a changed key is re-checked for
// uniqueness.
func (u *EmailTemplateUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateEmailTemplateInput) (*entities.EmailTemplate, error) {
	template, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("email template not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if input.Key != nil && *input.Key != template.Key {
		other, err := u.templateRepo.GetByKey(ctx, *input.Key)
		if err == nil && other.ID != id {
			return nil, domainerrors.Conflict("email template with this key already exists")
		}
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InternalError(err)
		}
		template.Key = *input.Key
	}
	if input.Subject != nil {
		template.Subject = *input.Subject
	}
	if input.Content != nil {
		template.Content = *input.Content
	}

	if err := u.templateRepo.Update(ctx, template); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("email template not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return u.GetByID(ctx, id)
}

// Delete removes a template.
func (u *EmailTemplateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.templateRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("email template not found")
		}
		return domainerrors.InternalError(err)
	}
	if err := u.templateRepo.Delete(ctx, id); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// Render resolves a template's subject and content against the variables map.
// Substitution is literal string replacement of `{{name}}` placeholders;
// placeholders without a matching variable are left as-is.
func (u *EmailTemplateUsecase) Render(ctx context.Context, key string, variables map[string]string) (*entities.RenderedEmail, error) {
	template, err := u.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	return &entities.RenderedEmail{
		Key:     template.Key,
		Subject: substituteVariables(template.Subject, variables),
		Content: substituteVariables(template.Content, variables),
	}, nil
}

func substituteVariables(text string, variables map[string]string) string {
	for name, value := range variables {
		text = strings.ReplaceAll(text, "{{"+name+"}}", value)
	}
	return text
}
