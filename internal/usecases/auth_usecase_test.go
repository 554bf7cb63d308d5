package usecases

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/pkg/crypto"
	"tredora.backend/pkg/jwt"
)

func newAuthFixture() (*AuthUsecase, *mockUserRepo, *mockOTPRepo, *mockTokenRepo) {
	userRepo := new(mockUserRepo)
	otpRepo := new(mockOTPRepo)
	tokenRepo := new(mockTokenRepo)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	tokenUsecase := NewTokenUsecase(tokenRepo, userRepo, jwtService)
	authUsecase := NewAuthUsecase(userRepo, otpRepo, tokenUsecase, jwtService, &fakeUnitOfWork{})
	return authUsecase, userRepo, otpRepo, tokenRepo
}

func registerInput() *entities.RegisterInput {
	return &entities.RegisterInput{
		Email:         "alice@trade.io",
		Password:      "secret123",
		FullName:      "Alice Doe",
		CorporateName: "Acme Trading",
		Designation:   "CFO",
		Username:      "alice",
	}
}

func TestAuthUsecase_RegisterSuccess(t *testing.T) {
	auth, userRepo, _, tokenRepo := newAuthFixture()
	ctx := context.Background()

	userRepo.On("FindByEmailOrUsername", mock.Anything, "alice@trade.io", "alice").
		Return([]*entities.User{}, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entities.User).ID = uuid.New()
		}).
		Return(nil)

	var wg sync.WaitGroup
	wg.Add(2)
	tokenRepo.On("DeleteByUserID", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { wg.Done() }).Return(nil)
	tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Token")).
		Run(func(mock.Arguments) { wg.Done() }).Return(nil)

	result, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)
	require.Equal(t, "alice@trade.io", result.User.Email)
	require.True(t, result.User.IsActive)
	require.NotNil(t, result.User.Profile)
	require.Equal(t, "Acme Trading", result.User.Profile.Corporate.Name)
	require.True(t, crypto.CheckPassword("secret123", result.User.PasswordHash))

	// Token persistence happens in the background; wait for both calls.
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("token save goroutine never ran")
	}
	tokenRepo.AssertExpectations(t)
}

func TestAuthUsecase_RegisterDuplicateEmail(t *testing.T) {
	auth, userRepo, _, _ := newAuthFixture()

	userRepo.On("FindByEmailOrUsername", mock.Anything, "alice@trade.io", "alice").
		Return([]*entities.User{{Email: "alice@trade.io", Username: "other"}}, nil)

	_, err := auth.Register(context.Background(), registerInput())
	require.Error(t, err)
	appErr := asAppError(t, err)
	assert.Equal(t, http.StatusConflict, appErr.Code)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_RegisterDuplicateUsername(t *testing.T) {
	auth, userRepo, _, _ := newAuthFixture()

	userRepo.On("FindByEmailOrUsername", mock.Anything, "alice@trade.io", "alice").
		Return([]*entities.User{{Email: "other@trade.io", Username: "alice"}}, nil)

	_, err := auth.Register(context.Background(), registerInput())
	appErr := asAppError(t, err)
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestAuthUsecase_RegisterSucceedsWhenTokenSaveFails(t *testing.T) {
	auth, userRepo, _, tokenRepo := newAuthFixture()

	userRepo.On("FindByEmailOrUsername", mock.Anything, mock.Anything, mock.Anything).
		Return([]*entities.User{}, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entities.User).ID = uuid.New()
		}).
		Return(nil)

	saved := make(chan struct{})
	tokenRepo.On("DeleteByUserID", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { close(saved) }).
		Return(assertableError("db down"))

	result, err := auth.Register(context.Background(), registerInput())
	require.NoError(t, err, "registration is not failed by the background save")
	require.NotEmpty(t, result.AccessToken)

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("token save goroutine never ran")
	}
}

func TestAuthUsecase_LoginSuccess(t *testing.T) {
	auth, userRepo, _, tokenRepo := newAuthFixture()
	hash, err := crypto.HashPassword("secret123")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: "alice@trade.io", Username: "alice", PasswordHash: hash, IsActive: true}

	userRepo.On("GetByEmail", mock.Anything, "alice@trade.io").Return(user, nil)
	tokenRepo.On("DeleteByUserID", mock.Anything, user.ID).Return(nil)
	tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Token")).Return(nil)

	result, err := auth.Login(context.Background(), &entities.LoginInput{Email: "alice@trade.io", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, user.ID, result.User.ID)
	tokenRepo.AssertExpectations(t)
}

func TestAuthUsecase_LoginFailures(t *testing.T) {
	hash, err := crypto.HashPassword("secret123")
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func(userRepo *mockUserRepo)
	}{
		{
			name: "unknown email",
			setup: func(userRepo *mockUserRepo) {
				userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(userRepo *mockUserRepo) {
				userRepo.On("GetByEmail", mock.Anything, mock.Anything).
					Return(&entities.User{ID: uuid.New(), PasswordHash: hash, IsActive: true}, nil)
			},
		},
		{
			name: "deactivated account",
			setup: func(userRepo *mockUserRepo) {
				userRepo.On("GetByEmail", mock.Anything, mock.Anything).
					Return(&entities.User{ID: uuid.New(), PasswordHash: hash, IsActive: false}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, userRepo, _, tokenRepo := newAuthFixture()
			tt.setup(userRepo)

			_, err := auth.Login(context.Background(), &entities.LoginInput{Email: "alice@trade.io", Password: "wrongpass"})
			appErr := asAppError(t, err)
			assert.Equal(t, http.StatusUnauthorized, appErr.Code)
			tokenRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthUsecase_ForgotPassword(t *testing.T) {
	auth, userRepo, otpRepo, _ := newAuthFixture()
	user := &entities.User{ID: uuid.New(), Email: "alice@trade.io"}

	userRepo.On("GetByEmail", mock.Anything, "alice@trade.io").Return(user, nil)
	otpRepo.On("MarkAllUsed", mock.Anything, user.ID).Return(nil)
	otpRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.OTP")).
		Run(func(args mock.Arguments) {
			otp := args.Get(1).(*entities.OTP)
			assert.Len(t, otp.Code, 6)
			assert.WithinDuration(t, time.Now().Add(10*time.Minute), otp.ExpiresAt, time.Minute)
		}).
		Return(nil)

	result, err := auth.ForgotPassword(context.Background(), &entities.ForgotPasswordInput{Email: "alice@trade.io"})
	require.NoError(t, err)
	require.Len(t, result.Code, 6, "code is returned in the response body")
	otpRepo.AssertExpectations(t)
}

func TestAuthUsecase_ForgotPasswordUnknownEmail(t *testing.T) {
	auth, userRepo, otpRepo, _ := newAuthFixture()
	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)

	_, err := auth.ForgotPassword(context.Background(), &entities.ForgotPasswordInput{Email: "missing@trade.io"})
	appErr := asAppError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	otpRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_VerifyOTPDoesNotConsume(t *testing.T) {
	auth, userRepo, otpRepo, _ := newAuthFixture()
	user := &entities.User{ID: uuid.New(), Email: "alice@trade.io"}
	otp := &entities.OTP{ID: uuid.New(), UserID: user.ID, Code: "482913", ExpiresAt: time.Now().Add(5 * time.Minute)}

	userRepo.On("GetByEmail", mock.Anything, "alice@trade.io").Return(user, nil)
	otpRepo.On("GetValid", mock.Anything, user.ID, "482913").Return(otp, nil)

	input := &entities.VerifyOTPInput{Email: "alice@trade.io", Code: "482913"}
	require.NoError(t, auth.VerifyOTP(context.Background(), input))
	// Verifying again with the same code still succeeds.
	require.NoError(t, auth.VerifyOTP(context.Background(), input))
	otpRepo.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
}

func TestAuthUsecase_VerifyOTPInvalid(t *testing.T) {
	auth, userRepo, otpRepo, _ := newAuthFixture()
	user := &entities.User{ID: uuid.New(), Email: "alice@trade.io"}

	userRepo.On("GetByEmail", mock.Anything, "alice@trade.io").Return(user, nil)
	otpRepo.On("GetValid", mock.Anything, user.ID, "000000").Return(nil, domainerrors.ErrNotFound)

	err := auth.VerifyOTP(context.Background(), &entities.VerifyOTPInput{Email: "alice@trade.io", Code: "000000"})
	appErr := asAppError(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestAuthUsecase_ResetPassword(t *testing.T) {
	auth, userRepo, otpRepo, tokenRepo := newAuthFixture()
	user := &entities.User{ID: uuid.New(), Email: "alice@trade.io"}
	otp := &entities.OTP{ID: uuid.New(), UserID: user.ID, Code: "482913", ExpiresAt: time.Now().Add(5 * time.Minute)}

	userRepo.On("GetByEmail", mock.Anything, "alice@trade.io").Return(user, nil)
	otpRepo.On("GetValid", mock.Anything, user.ID, "482913").Return(otp, nil)
	userRepo.On("UpdatePassword", mock.Anything, user.ID, mock.MatchedBy(func(hash string) bool {
		return crypto.CheckPassword("newpassword", hash)
	})).Return(nil)
	otpRepo.On("MarkUsed", mock.Anything, otp.ID).Return(nil)
	tokenRepo.On("DeleteByUserID", mock.Anything, user.ID).Return(nil)

	err := auth.ResetPassword(context.Background(), &entities.ResetPasswordInput{
		Email:       "alice@trade.io",
		Code:        "482913",
		NewPassword: "newpassword",
	})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	otpRepo.AssertExpectations(t)
	tokenRepo.AssertExpectations(t)
}

func TestAuthUsecase_ResetPasswordBadOTP(t *testing.T) {
	auth, userRepo, otpRepo, _ := newAuthFixture()
	user := &entities.User{ID: uuid.New(), Email: "alice@trade.io"}

	userRepo.On("GetByEmail", mock.Anything, "alice@trade.io").Return(user, nil)
	otpRepo.On("GetValid", mock.Anything, user.ID, "000000").Return(nil, domainerrors.ErrNotFound)

	err := auth.ResetPassword(context.Background(), &entities.ResetPasswordInput{
		Email:       "alice@trade.io",
		Code:        "000000",
		NewPassword: "newpassword",
	})
	appErr := asAppError(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_GetProfile(t *testing.T) {
	auth, userRepo, _, _ := newAuthFixture()
	user := &entities.User{
		ID: uuid.New(),
		Profile: &entities.Profile{
			FullName:  "Alice Doe",
			Corporate: &entities.Corporate{Name: "Acme Trading"},
		},
	}
	userRepo.On("GetWithProfile", mock.Anything, user.ID).Return(user, nil)

	got, err := auth.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Trading", got.Profile.Corporate.Name)

	userRepo.On("GetWithProfile", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)
	_, err = auth.GetProfile(context.Background(), uuid.New())
	appErr := asAppError(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestAuthUsecase_Logout(t *testing.T) {
	auth, _, _, tokenRepo := newAuthFixture()
	userID := uuid.New()
	tokenRepo.On("DeleteByUserID", mock.Anything, userID).Return(nil).Twice()

	require.NoError(t, auth.Logout(context.Background(), userID))
	require.NoError(t, auth.Logout(context.Background(), userID), "logout is idempotent")
	tokenRepo.AssertExpectations(t)
}
