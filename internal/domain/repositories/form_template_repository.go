package repositories

import (
	"context"

	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
)

// FormTemplateRepository defines form template operations. Every read returns
// the full tree: fields ordered by their order value ascending, each with its
// options (ordered likewise) and validations.
type FormTemplateRepository interface {
	Create(ctx context.Context, template *entities.FormTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FormTemplate, error)
	List(ctx context.Context) ([]*entities.FormTemplate, error)
	// Update rewrites the template's scalar fields; when replaceFields is set
	// the whole field tree is deleted and the supplied one inserted.
	Update(ctx context.Context, template *entities.FormTemplate, replaceFields bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// RequestRepository defines submitted-request operations. Reads eager-load
// the creator summary and the full ordered template tree.
type RequestRepository interface {
	Create(ctx context.Context, request *entities.Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Request, error)
	List(ctx context.Context, filter entities.RequestFilter) ([]*entities.Request, error)
	Update(ctx context.Context, request *entities.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
