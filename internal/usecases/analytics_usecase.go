package usecases

import (
	"context"

	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/domain/repositories"
)

// AnalyticsUsecase aggregates platform-wide counters.
type AnalyticsUsecase struct {
	userRepo     repositories.UserRepository
	requestRepo  repositories.RequestRepository
	templateRepo repositories.FormTemplateRepository
}

// NewAnalyticsUsecase creates a new analytics usecase.
func NewAnalyticsUsecase(
	userRepo repositories.UserRepository,
	requestRepo repositories.RequestRepository,
	templateRepo repositories.FormTemplateRepository,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		userRepo:     userRepo,
		requestRepo:  requestRepo,
		templateRepo: templateRepo,
	}
}

// GetAnalytics counts users, requests and templates. TotalTransactions has
// no backing table yet and stays zero.
func (u *AnalyticsUsecase) GetAnalytics(ctx context.Context) (*entities.Analytics, error) {
	users, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	requests, err := u.requestRepo.Count(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	templates, err := u.templateRepo.Count(ctx)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.Analytics{
		TotalUsers:        users,
		TotalRequests:     requests,
		TotalTemplates:    templates,
		TotalTransactions: 0,
	}, nil
}
