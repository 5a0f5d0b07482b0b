// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"areacheck/config"
	deliverycontext "areacheck/internal/delivery/context"
	"areacheck/internal/domain/entity"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/domain/repository"
	"areacheck/internal/domain/service"
	"areacheck/internal/errors"
	"areacheck/internal/usecase"

	"go.uber.org/fx"
)

// bcrypt ignores input past 72 bytes and x/crypto rejects it.
const maxPasswordBytes = 72

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	cookies      cookieSettings
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		cookies:      newCookieSettings(params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new user with a hashed password.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) error {
	srv.log(ctx).Debug("Starting signup", slog.String("username", input.Username))

	if len(input.Password) > maxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes")
	}

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		srv.log(ctx).Info("Signup rejected, username taken", slog.String("username", input.Username))

		return errors.Wrap(domainerrors.ErrUsernameTaken, "signup failed")
	case !errors.Is(err, repository.ErrUserNotFound):
		return persistenceError(err, "failed to look up username")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Password hashing failed", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Another signup for the same name won the race after our lookup.
		if errors.Is(err, repository.ErrUsernameConflict) {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "signup failed")
		}

		return persistenceError(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.Int64("userID", user.ID), slog.String("username", user.Username))

	return nil
}

// Login verifies credentials and issues a fresh token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "unknown user"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, persistenceError(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(user.Username, user.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}
	refreshToken, err := srv.tokenService.IssueRefreshToken(user.Username, user.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		AccessCookie:  srv.cookies.token(entity.AccessTokenCookie, accessToken, srv.tokenService.AccessTTL()),
		RefreshCookie: srv.cookies.token(entity.RefreshTokenCookie, refreshToken, srv.tokenService.RefreshTTL()),
		User:          user,
	}, nil
}

// Refresh mints a new access token for the identity in a valid refresh token.
// The refresh token itself is returned unchanged to the client.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if input.RefreshToken == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh token is missing")
	}

	claims, err := srv.tokenService.ParseRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh failed")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(claims.Username, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		AccessCookie: srv.cookies.token(entity.AccessTokenCookie, accessToken, srv.tokenService.AccessTTL()),
	}, nil
}

// Logout returns expired cookies; tokens stay valid until they expire.
func (srv *authService) Logout(ctx context.Context) *usecase.LogoutOutput {
	srv.log(ctx).Debug("Clearing token cookies")

	return &usecase.LogoutOutput{
		AccessCookie:  srv.cookies.cleared(entity.AccessTokenCookie),
		RefreshCookie: srv.cookies.cleared(entity.RefreshTokenCookie),
	}
}

// persistenceError reports a storage failure as ErrPersistence, keeping the cause in the details.
func persistenceError(err error, message string) error {
	if errors.Is(err, domainerrors.ErrPersistence) {
		return errors.Wrap(err, message)
	}

	return errors.Wrap(domainerrors.ErrPersistence.WithDetails(err.Error()), message)
}
