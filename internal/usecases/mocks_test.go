package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"tredora.backend/internal/domain/entities"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) ([]*entities.User, error) {
	args := m.Called(ctx, email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockUserRepo) GetWithProfile(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockOTPRepo struct{ mock.Mock }

func (m *mockOTPRepo) Create(ctx context.Context, otp *entities.OTP) error {
	return m.Called(ctx, otp).Error(0)
}

func (m *mockOTPRepo) GetValid(ctx context.Context, userID uuid.UUID, code string) (*entities.OTP, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OTP), args.Error(1)
}

func (m *mockOTPRepo) MarkAllUsed(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockOTPRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) Create(ctx context.Context, token *entities.Token) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockTokenRepo) GetByRefreshToken(ctx context.Context, refreshToken string) (*entities.Token, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Token), args.Error(1)
}

func (m *mockTokenRepo) GetByAccessToken(ctx context.Context, accessToken string) (*entities.Token, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Token), args.Error(1)
}

func (m *mockTokenRepo) Update(ctx context.Context, token *entities.Token) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockTokenRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTokenRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockTokenRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.TokenInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TokenInfo), args.Error(1)
}

func (m *mockTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type mockBankRepo struct{ mock.Mock }

func (m *mockBankRepo) Create(ctx context.Context, bank *entities.Bank) error {
	return m.Called(ctx, bank).Error(0)
}

func (m *mockBankRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bank), args.Error(1)
}

func (m *mockBankRepo) GetBySwiftCode(ctx context.Context, swiftCode string) (*entities.Bank, error) {
	args := m.Called(ctx, swiftCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bank), args.Error(1)
}

func (m *mockBankRepo) List(ctx context.Context) ([]*entities.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Bank), args.Error(1)
}

func (m *mockBankRepo) Update(ctx context.Context, bank *entities.Bank, replaceContacts bool) error {
	return m.Called(ctx, bank, replaceContacts).Error(0)
}

func (m *mockBankRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockEmailTemplateRepo struct{ mock.Mock }

func (m *mockEmailTemplateRepo) Create(ctx context.Context, template *entities.EmailTemplate) error {
	return m.Called(ctx, template).Error(0)
}

func (m *mockEmailTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.EmailTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmailTemplate), args.Error(1)
}

func (m *mockEmailTemplateRepo) GetByKey(ctx context.Context, key string) (*entities.EmailTemplate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmailTemplate), args.Error(1)
}

func (m *mockEmailTemplateRepo) List(ctx context.Context) ([]*entities.EmailTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EmailTemplate), args.Error(1)
}

func (m *mockEmailTemplateRepo) Update(ctx context.Context, template *entities.EmailTemplate) error {
	return m.Called(ctx, template).Error(0)
}

func (m *mockEmailTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockFormTemplateRepo struct{ mock.Mock }

func (m *mockFormTemplateRepo) Create(ctx context.Context, template *entities.FormTemplate) error {
	return m.Called(ctx, template).Error(0)
}

func (m *mockFormTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.FormTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FormTemplate), args.Error(1)
}

func (m *mockFormTemplateRepo) List(ctx context.Context) ([]*entities.FormTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FormTemplate), args.Error(1)
}

func (m *mockFormTemplateRepo) Update(ctx context.Context, template *entities.FormTemplate, replaceFields bool) error {
	return m.Called(ctx, template, replaceFields).Error(0)
}

func (m *mockFormTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFormTemplateRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockRequestRepo struct{ mock.Mock }

func (m *mockRequestRepo) Create(ctx context.Context, request *entities.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Request), args.Error(1)
}

func (m *mockRequestRepo) List(ctx context.Context, filter entities.RequestFilter) ([]*entities.Request, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Request), args.Error(1)
}

func (m *mockRequestRepo) Update(ctx context.Context, request *entities.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockRequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRequestRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// fakeUnitOfWork runs the function directly; transactional behavior itself is
// covered by the repository tests.
type fakeUnitOfWork struct{}

func (f *fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}
