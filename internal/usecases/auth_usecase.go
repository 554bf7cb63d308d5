package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tredora.backend/internal/domain/entities"
	domainerrors "tredora.backend/internal/domain/errors"
	"tredora.backend/internal/domain/repositories"
	"tredora.backend/pkg/crypto"
	"tredora.backend/pkg/jwt"
	"tredora.backend/pkg/logger"
)

// otpLifetime is how long a password-reset code stays valid.
const otpLifetime = 10 * time.Minute

// ForgotPasswordResult carries the issued reset code back to the caller.
// Returning the raw code in the response stands in for email delivery until
// an outbound mail channel exists.
type ForgotPasswordResult struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// AuthUsecase handles registration, login and the password-reset flow.
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	otpRepo      repositories.OTPRepository
	tokenUsecase *TokenUsecase
	jwtService   *jwt.Service
	uow          repositories.UnitOfWork
}

// NewAuthUsecase creates a new auth usecase.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	tokenUsecase *TokenUsecase,
	jwtService *jwt.Service,
	uow repositories.UnitOfWork,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		tokenUsecase: tokenUsecase,
		jwtService:   jwtService,
		uow:          uow,
	}
}

// Register creates a user with its profile and corporate records, then issues
// a token pair. The pair is persisted in the background; a failure there is
// logged but does not fail registration.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	// Hash while the uniqueness lookup runs; bcrypt dominates the latency.
	type hashResult struct {
		hash string
		err  error
	}
	hashCh := make(chan hashResult, 1)
	go func() {
		hash, err := crypto.HashPassword(input.Password)
		hashCh <- hashResult{hash: hash, err: err}
	}()

	existing, err := u.userRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	for _, e := range existing {
		if e.Email == input.Email {
			return nil, domainerrors.Conflict("email already registered")
		}
		if e.Username == input.Username {
			return nil, domainerrors.Conflict("username already taken")
		}
	}

	hashed := <-hashCh
	if hashed.err != nil {
		return nil, domainerrors.InternalError(hashed.err)
	}

	user := &entities.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hashed.hash,
		IsActive:     true,
		Profile: &entities.Profile{
			FullName: input.FullName,
			Corporate: &entities.Corporate{
				Name:        input.CorporateName,
				Designation: input.Designation,
			},
		},
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := u.tokenUsecase.SaveTokens(bgCtx, user.ID, pair); err != nil {
			logger.Error(bgCtx, "failed to persist tokens after registration",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
	}()

	return &entities.AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Login authenticates a user and issues a persisted token pair. Unknown
// email, wrong password and deactivated accounts all fail identically.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid credentials")
		}
		return nil, domainerrors.InternalError(err)
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid credentials")
	}
	if !user.IsActive {
		return nil, domainerrors.Unauthorized("account is deactivated")
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if err := u.tokenUsecase.SaveTokens(ctx, user.ID, pair); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout revokes every stored pair for the user. Logging out twice is fine.
func (u *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	return u.tokenUsecase.RevokeTokens(ctx, userID)
}

// GetProfile returns the user with profile and corporate records loaded.
func (u *AuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetWithProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, domainerrors.InternalError(err)
	}
	return user, nil
}

// ForgotPassword invalidates outstanding reset codes and issues a fresh one.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, input *entities.ForgotPasswordInput) (*ForgotPasswordResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, domainerrors.InternalError(err)
	}

	if err := u.otpRepo.MarkAllUsed(ctx, user.ID); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	code, err := crypto.GenerateOTP(crypto.OTPLength)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	otp := &entities.OTP{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(otpLifetime),
	}
	if err := u.otpRepo.Create(ctx, otp); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &ForgotPasswordResult{
		Message: "OTP generated successfully",
		Code:    code,
	}, nil
}

// VerifyOTP checks that a code is outstanding and unexpired without
// consuming it; the same code still authorizes the reset call.
func (u *AuthUsecase) VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) error {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("user not found")
		}
		return domainerrors.InternalError(err)
	}

	if _, err := u.otpRepo.GetValid(ctx, user.ID, input.Code); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.BadRequest("invalid or expired OTP")
		}
		return domainerrors.InternalError(err)
	}
	return nil
}

// ResetPassword re-validates the code and then, in one transaction, replaces
// the password hash, consumes the code and revokes every stored token.
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("user not found")
		}
		return domainerrors.InternalError(err)
	}

	otp, err := u.otpRepo.GetValid(ctx, user.ID, input.Code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.BadRequest("invalid or expired OTP")
		}
		return domainerrors.InternalError(err)
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return domainerrors.InternalError(err)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.UpdatePassword(txCtx, user.ID, hash); err != nil {
			return err
		}
		if err := u.otpRepo.MarkUsed(txCtx, otp.ID); err != nil {
			return err
		}
		return u.tokenUsecase.RevokeTokens(txCtx, user.ID)
	})
	if err != nil {
		var appErr *domainerrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return domainerrors.InternalError(err)
	}
	return nil
}
