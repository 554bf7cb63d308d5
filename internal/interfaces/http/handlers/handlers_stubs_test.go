package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
)

// Func-field stubs for driving handlers through real usecases. Unset fields
// fall back to empty results or ErrNotFound.

type userRepoStub struct {
	createFn                func(ctx context.Context, user *entities.User) error
	getByIDFn               func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn            func(ctx context.Context, email string) (*entities.User, error)
	findByEmailOrUsernameFn func(ctx context.Context, email, username string) ([]*entities.User, error)
	getWithProfileFn        func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	updatePasswordFn        func(ctx context.Context, id uuid.UUID, passwordHash string) error
	countFn                 func(ctx context.Context) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) FindByEmailOrUsername(ctx context.Context, email, username string) ([]*entities.User, error) {
	if s.findByEmailOrUsernameFn != nil {
		return s.findByEmailOrUsernameFn(ctx, email, username)
	}
	return nil, nil
}

func (s *userRepoStub) GetWithProfile(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getWithProfileFn != nil {
		return s.getWithProfileFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if s.updatePasswordFn != nil {
		return s.updatePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type otpRepoStub struct {
	createFn      func(ctx context.Context, otp *entities.OTP) error
	getValidFn    func(ctx context.Context, userID uuid.UUID, code string) (*entities.OTP, error)
	markAllUsedFn func(ctx context.Context, userID uuid.UUID) error
	markUsedFn    func(ctx context.Context, id uuid.UUID) error
}

func (s *otpRepoStub) Create(ctx context.Context, otp *entities.OTP) error {
	if s.createFn != nil {
		return s.createFn(ctx, otp)
	}
	return nil
}

func (s *otpRepoStub) GetValid(ctx context.Context, userID uuid.UUID, code string) (*entities.OTP, error) {
	if s.getValidFn != nil {
		return s.getValidFn(ctx, userID, code)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *otpRepoStub) MarkAllUsed(ctx context.Context, userID uuid.UUID) error {
	if s.markAllUsedFn != nil {
		return s.markAllUsedFn(ctx, userID)
	}
	return nil
}

func (s *otpRepoStub) MarkUsed(ctx context.Context, id uuid.UUID) error {
	if s.markUsedFn != nil {
		return s.markUsedFn(ctx, id)
	}
	return nil
}

type tokenRepoStub struct {
	createFn            func(ctx context.Context, token *entities.Token) error
	getByRefreshTokenFn func(ctx context.Context, refreshToken string) (*entities.Token, error)
	getByAccessTokenFn  func(ctx context.Context, accessToken string) (*entities.Token, error)
	updateFn            func(ctx context.Context, token *entities.Token) error
	deleteFn            func(ctx context.Context, id uuid.UUID) error
	deleteByUserIDFn    func(ctx context.Context, userID uuid.UUID) error
	listByUserIDFn      func(ctx context.Context, userID uuid.UUID) ([]*entities.TokenInfo, error)
	deleteExpiredFn     func(ctx context.Context, now time.Time) (int64, error)
}

func (s *tokenRepoStub) Create(ctx context.Context, token *entities.Token) error {
	if s.createFn != nil {
		return s.createFn(ctx, token)
	}
	return nil
}

func (s *tokenRepoStub) GetByRefreshToken(ctx context.Context, refreshToken string) (*entities.Token, error) {
	if s.getByRefreshTokenFn != nil {
		return s.getByRefreshTokenFn(ctx, refreshToken)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenRepoStub) GetByAccessToken(ctx context.Context, accessToken string) (*entities.Token, error) {
	if s.getByAccessTokenFn != nil {
		return s.getByAccessTokenFn(ctx, accessToken)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *tokenRepoStub) Update(ctx context.Context, token *entities.Token) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, token)
	}
	return nil
}

func (s *tokenRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *tokenRepoStub) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if s.deleteByUserIDFn != nil {
		return s.deleteByUserIDFn(ctx, userID)
	}
	return nil
}

func (s *tokenRepoStub) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.TokenInfo, error) {
	if s.listByUserIDFn != nil {
		return s.listByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (s *tokenRepoStub) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if s.deleteExpiredFn != nil {
		return s.deleteExpiredFn(ctx, now)
	}
	return 0, nil
}

type bankRepoStub struct {
	createFn         func(ctx context.Context, bank *entities.Bank) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*entities.Bank, error)
	getBySwiftCodeFn func(ctx context.Context, swiftCode string) (*entities.Bank, error)
	listFn           func(ctx context.Context) ([]*entities.Bank, error)
	updateFn         func(ctx context.Context, bank *entities.Bank, replaceContacts bool) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (s *bankRepoStub) Create(ctx context.Context, bank *entities.Bank) error {
	if s.createFn != nil {
		return s.createFn(ctx, bank)
	}
	return nil
}

func (s *bankRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Bank, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *bankRepoStub) GetBySwiftCode(ctx context.Context, swiftCode string) (*entities.Bank, error) {
	if s.getBySwiftCodeFn != nil {
		return s.getBySwiftCodeFn(ctx, swiftCode)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *bankRepoStub) List(ctx context.Context) ([]*entities.Bank, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Bank{}, nil
}

func (s *bankRepoStub) Update(ctx context.Context, bank *entities.Bank, replaceContacts bool) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, bank, replaceContacts)
	}
	return nil
}

func (s *bankRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type emailTemplateRepoStub struct {
	createFn   func(ctx context.Context, template *entities.EmailTemplate) error
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*entities.EmailTemplate, error)
	getByKeyFn func(ctx context.Context, key string) (*entities.EmailTemplate, error)
	listFn     func(ctx context.Context) ([]*entities.EmailTemplate, error)
	updateFn   func(ctx context.Context, template *entities.EmailTemplate) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (s *emailTemplateRepoStub) Create(ctx context.Context, template *entities.EmailTemplate) error {
	if s.createFn != nil {
		return s.createFn(ctx, template)
	}
	return nil
}

func (s *emailTemplateRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.EmailTemplate, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *emailTemplateRepoStub) GetByKey(ctx context.Context, key string) (*entities.EmailTemplate, error) {
	if s.getByKeyFn != nil {
		return s.getByKeyFn(ctx, key)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *emailTemplateRepoStub) List(ctx context.Context) ([]*entities.EmailTemplate, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.EmailTemplate{}, nil
}

func (s *emailTemplateRepoStub) Update(ctx context.Context, template *entities.EmailTemplate) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, template)
	}
	return nil
}

func (s *emailTemplateRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type formTemplateRepoStub struct {
	createFn  func(ctx context.Context, template *entities.FormTemplate) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.FormTemplate, error)
	listFn    func(ctx context.Context) ([]*entities.FormTemplate, error)
	updateFn  func(ctx context.Context, template *entities.FormTemplate, replaceFields bool) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	countFn   func(ctx context.Context) (int64, error)
}

func (s *formTemplateRepoStub) Create(ctx context.Context, template *entities.FormTemplate) error {
	if s.createFn != nil {
		return s.createFn(ctx, template)
	}
	return nil
}

func (s *formTemplateRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.FormTemplate, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *formTemplateRepoStub) List(ctx context.Context) ([]*entities.FormTemplate, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.FormTemplate{}, nil
}

func (s *formTemplateRepoStub) Update(ctx context.Context, template *entities.FormTemplate, replaceFields bool) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, template, replaceFields)
	}
	return nil
}

func (s *formTemplateRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *formTemplateRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type requestRepoStub struct {
	createFn  func(ctx context.Context, request *entities.Request) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entities.Request, error)
	listFn    func(ctx context.Context, filter entities.RequestFilter) ([]*entities.Request, error)
	updateFn  func(ctx context.Context, request *entities.Request) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	countFn   func(ctx context.Context) (int64, error)
}

func (s *requestRepoStub) Create(ctx context.Context, request *entities.Request) error {
	if s.createFn != nil {
		return s.createFn(ctx, request)
	}
	return nil
}

func (s *requestRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Request, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *requestRepoStub) List(ctx context.Context, filter entities.RequestFilter) ([]*entities.Request, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return []*entities.Request{}, nil
}

func (s *requestRepoStub) Update(ctx context.Context, request *entities.Request) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, request)
	}
	return nil
}

func (s *requestRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *requestRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

// uowStub runs the unit without a real transaction.
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type generatorStub struct {
	generateFn func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (s *generatorStub) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, systemPrompt, userPrompt)
	}
	return "{}", nil
}
