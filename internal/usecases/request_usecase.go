package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/domain/repositories"
)

// RequestUsecase handles submitted form requests.
type RequestUsecase struct {
	requestRepo  repositories.RequestRepository
	userRepo     repositories.UserRepository
	templateRepo repositories.FormTemplateRepository
}

// NewRequestUsecase creates a new request usecase.
func NewRequestUsecase(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	templateRepo repositories.FormTemplateRepository,
) *RequestUsecase {
	return &RequestUsecase{
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		templateRepo: templateRepo,
	}
}

// Create links a creator to a form template after checking both exist.
func (u *RequestUsecase) Create(ctx context.Context, input *entities.CreateRequestInput) (*entities.Request, error) {
	if _, err := u.userRepo.GetByID(ctx, input.CreatorID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("creator not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	if _, err := u.templateRepo.GetByID(ctx, input.FormTemplateID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("form template not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	request := &entities.Request{
		CreatorID:      input.CreatorID,
		FormTemplateID: input.FormTemplateID,
	}
	if err := u.requestRepo.Create(ctx, request); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return u.GetByID(ctx, request.ID)
}

// List returns requests matching the filter, newest first.
func (u *RequestUsecase) List(ctx context.Context, filter entities.RequestFilter) ([]*entities.Request, error) {
	requests, err := u.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return requests, nil
}

// GetByID returns one request with creator summary and template tree.
func (u *RequestUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Request, error) {
	request, err := u.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("request not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return request, nil
}

// Update repoints the creator or template links, re-checking the targets.
func (u *RequestUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateRequestInput) (*entities.Request, error) {
	request, err := u.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("request not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if input.CreatorID != nil {
		if _, err := u.userRepo.GetByID(ctx, *input.CreatorID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("creator not found")
			}
			return nil, domainerrors.InternalError(err)
		}
		request.CreatorID = *input.CreatorID
	}
	if input.FormTemplateID != nil {
		if _, err := u.templateRepo.GetByID(ctx, *input.FormTemplateID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("form template not found")
			}
			return nil, domainerrors.InternalError(err)
		}
		request.FormTemplateID = *input.FormTemplateID
	}

	if err := u.requestRepo.Update(ctx, request); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("request not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return u.GetByID(ctx, id)
}

// Delete removes a request.
func (u *RequestUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.requestRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("request not found")
		}
		return domainerrors.InternalError(err)
	}
	if err := u.requestRepo.Delete(ctx, id); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}
