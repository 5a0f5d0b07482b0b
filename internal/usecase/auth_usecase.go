// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"areacheck/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// RefreshInput carries the refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login,
// both as raw strings and as cookies ready for the transport.
type LoginOutput struct {
	AccessToken   string
	RefreshToken  string
	AccessCookie  *entity.TokenCookie
	RefreshCookie *entity.TokenCookie
	User          *entity.User
}

// RefreshOutput returns the newly minted access token.
type RefreshOutput struct {
	AccessToken  string
	AccessCookie *entity.TokenCookie
}

// LogoutOutput holds the cleared cookies the client must store to forget its tokens.
type LogoutOutput struct {
	AccessCookie  *entity.TokenCookie
	RefreshCookie *entity.TokenCookie
}

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context) *LogoutOutput
}
