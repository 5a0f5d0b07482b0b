package handler

import (
	"log/slog"
	"net/http"
	"time"

	"areacheck/internal/delivery/api/response"
	deliverycontext "areacheck/internal/delivery/context"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/errors"
	"areacheck/internal/usecase"

	"github.com/labstack/echo/v4"
)

// submitPointRequest is the body of POST /api/point/add.
// Result is accepted for compatibility and ignored.
type submitPointRequest struct {
	X      *int     `json:"x" form:"x" validate:"required"`
	Y      *float64 `json:"y" form:"y" validate:"required"`
	R      *int     `json:"r" form:"r" validate:"required"`
	Result *bool    `json:"result,omitempty" form:"result"`
}

type submitPointResponse struct {
	Result bool `json:"result"`
}

type resultResponse struct {
	ID        int64     `json:"id"`
	X         int       `json:"x"`
	Y         float64   `json:"y"`
	R         int       `json:"r"`
	Result    bool      `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}

// PointHandler serves point submission and history.
type PointHandler struct {
	uc     usecase.PointUsecase
	logger *slog.Logger
}

// NewPointHandler is the constructor for PointHandler, injected by Fx.
func NewPointHandler(uc usecase.PointUsecase, logger *slog.Logger) *PointHandler {
	return &PointHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit evaluates a point for the authenticated user.
func (h *PointHandler) Submit(c echo.Context) error {
	username, ok := deliverycontext.GetUsername(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidToken, "no identity on request")
	}

	var req submitPointRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Submit(c.Request().Context(), &usecase.SubmitPointInput{
		Username: username,
		X:        *req.X,
		Y:        *req.Y,
		R:        *req.R,
		Result:   req.Result,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submitPointResponse{Result: output.Result})
}

// History lists the authenticated user's results, oldest first.
func (h *PointHandler) History(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidToken, "no identity on request")
	}

	output, err := h.uc.History(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]resultResponse, 0, len(output.Results))
	for _, result := range output.Results {
		results = append(results, resultResponse{
			ID:        result.ID,
			X:         result.X,
			Y:         result.Y,
			R:         result.R,
			Result:    result.Hit,
			CreatedAt: result.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, results)
}
