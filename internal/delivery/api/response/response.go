// Package response renders the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "areacheck/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code      string `json:"code"`                // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message   string `json:"message"`             // User-friendly error message
	Details   any    `json:"details,omitempty"`   // Additional error context (only for 4xx errors)
	Retryable bool   `json:"retryable,omitempty"` // The same request may succeed later
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// MessageData is the payload of responses that only confirm an action.
type MessageData struct {
	Message string `json:"message"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Message returns a successful response carrying only a message.
func Message(c echo.Context, statusCode int, message string) error {
	return Success(c, statusCode, MessageData{Message: message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return write(c, statusCode, &ErrorInfo{Code: errorCode, Message: message, Details: details})
}

// RetryableError returns an error response that invites the client to try again.
func RetryableError(c echo.Context, statusCode int, errorCode string, message string) error {
	c.Response().Header().Set("Retry-After", "1")

	return write(c, statusCode, &ErrorInfo{Code: errorCode, Message: message, Retryable: true})
}

func write(c echo.Context, statusCode int, info *ErrorInfo) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: info,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
