package repository

import (
	"context"

	"areacheck/internal/domain/entity"
)

// ResultRepository stores evaluated points.
type ResultRepository interface {
	// Insert persists a new result and sets its ID and CreatedAt.
	Insert(ctx context.Context, result *entity.Result) error

	// ListByOwner returns every result of the user in insertion order.
	ListByOwner(ctx context.Context, userID int64) ([]*entity.Result, error)
}
