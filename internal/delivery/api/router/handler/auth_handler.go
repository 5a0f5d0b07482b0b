// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"areacheck/internal/delivery/api/response"
	"areacheck/internal/domain/entity"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/errors"
	"areacheck/internal/usecase"

	"github.com/labstack/echo/v4"
)

// credentialsRequest is the body of signup and login, as JSON or a form.
type credentialsRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=255"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the user registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	if err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenCookie(c, output.AccessCookie)
	setTokenCookie(c, output.RefreshCookie)

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Refresh mints a new access token from the refresh_token cookie or the request body.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var token string
	if cookie, err := c.Cookie(entity.RefreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		// An unreadable body leaves the token empty and is rejected as an invalid token.
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{RefreshToken: token})
	if err != nil {
		return errors.WithStack(err)
	}

	setTokenCookie(c, output.AccessCookie)

	return response.Success(c, http.StatusOK, refreshResponse{AccessToken: output.AccessToken})
}

// Logout clears both token cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	output := h.uc.Logout(c.Request().Context())

	setTokenCookie(c, output.AccessCookie)
	setTokenCookie(c, output.RefreshCookie)

	return response.Message(c, http.StatusOK, "Successfully logged out")
}

func bindCredentials(c echo.Context) (*credentialsRequest, error) {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	return &req, nil
}
