package usecase

import (
	"context"

	"areacheck/internal/domain/entity"
)

// SubmitPointInput is a point submitted by an authenticated user.
// Result is whatever the client claimed; it is never trusted.
type SubmitPointInput struct {
	Username string
	X        int
	Y        float64
	R        int
	Result   *bool
}

// SubmitPointOutput is the server-computed outcome.
type SubmitPointOutput struct {
	Result   bool
	ResultID int64
}

// HistoryOutput lists a user's results in submission order.
type HistoryOutput struct {
	Results []*entity.Result
}

// PointUsecase evaluates points and keeps their history.
type PointUsecase interface {
	Submit(ctx context.Context, input *SubmitPointInput) (*SubmitPointOutput, error)
	History(ctx context.Context, userID int64) (*HistoryOutput, error)
}
