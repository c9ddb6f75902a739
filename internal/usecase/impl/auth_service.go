// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/domain/validation"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after running the full ordered validation.
// The stored email is the lowercased form of whatever the caller sent.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(input.Email)

	if messages := validation.RegisterFields(input.Username, email, input.Password); len(messages) > 0 {
		srv.log(ctx).Debug("Registration rejected by validation", slog.Int("violations", len(messages)))

		return nil, domainerrors.NewValidationError(messages)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", email), slog.Any("error", err))

		// A taken email joins the validation contract: the register
		// endpoint answers every 400 with the errors list.
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			return nil, domainerrors.NewValidationError([]string{"Error registering user"})
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.String("email", email))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the credentials and issues a fresh access/refresh token pair.
// A missing user and a wrong password produce the same error so the endpoint
// never reveals which emails exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(input.Email)

	if messages := validation.LoginFields(email, input.Password); len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages)
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	srv.log(ctx).Debug("User logged in", slog.String("email", user.Email))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new access token.
// The refresh token itself is never rotated, so a stolen access token
// expires on schedule while the session keeps working.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerrors.ErrMissingRefreshToken.WrapMessage("refresh rejected")
	}

	claims, err := srv.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("refresh rejected")
	}

	// Any structurally valid, unexpired refresh token is honored. There is
	// no revocation list and no user lookup here.
	accessToken, err := srv.tokenService.IssueAccessToken(claims.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.String("email", claims.Email))

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}
