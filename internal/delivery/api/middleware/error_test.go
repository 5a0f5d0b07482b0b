package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"areacheck/internal/delivery/api/response"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "username taken", err: errors.Wrap(domainerrors.ErrUsernameTaken, "signup"), wantStatus: http.StatusConflict, wantCode: "USERNAME_TAKEN"},
		{name: "invalid credentials", err: domainerrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_CREDENTIALS"},
		{name: "invalid token", err: domainerrors.ErrInvalidToken, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "unknown user", err: domainerrors.ErrUnknownUser, wantStatus: http.StatusNotFound, wantCode: "UNKNOWN_USER"},
		{name: "internal", err: domainerrors.ErrInternalError, wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{name: "unclassified", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := handleError(t, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, body.Error.Code)
			assert.False(t, body.Error.Retryable)
			assert.Empty(t, rec.Header().Get("Retry-After"))
		})
	}
}

func TestHandleHTTPError_ValidationDetails(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrValidationFailed.WithDetails("username is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "username is required", body.Error.Details)
}

func TestHandleHTTPError_Persistence(t *testing.T) {
	for _, err := range []error{
		errors.Wrap(domainerrors.ErrPersistence.WithDetails("dial tcp: refused"), "store result"),
		domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "insert"),
	} {
		rec, body := handleError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "PERSISTENCE_FAILED", body.Error.Code)
		assert.True(t, body.Error.Retryable)
		assert.Nil(t, body.Error.Details)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.NotContains(t, rec.Body.String(), "refused")
		assert.NotContains(t, rec.Body.String(), "deadlock")
	}
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, http.StatusText(http.StatusMethodNotAllowed), body.Error.Message)
}
