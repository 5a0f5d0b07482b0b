package memory

import (
	"context"
	"sync"
	"time"

	"areacheck/internal/domain/entity"
	"areacheck/internal/domain/repository"
	"areacheck/internal/errors"
)

type resultRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byOwner map[int64][]entity.Result
	now     func() time.Time
}

// NewResultRepository returns an empty in-memory result store.
func NewResultRepository() repository.ResultRepository {
	return &resultRepository{
		byOwner: make(map[int64][]entity.Result),
		now:     time.Now,
	}
}

func (repo *resultRepository) Insert(ctx context.Context, result *entity.Result) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.nextID++
	result.ID = repo.nextID
	result.CreatedAt = repo.now()

	repo.byOwner[result.UserID] = append(repo.byOwner[result.UserID], *result)

	return nil
}

// ListByOwner returns copies so callers cannot mutate stored history.
func (repo *resultRepository) ListByOwner(ctx context.Context, userID int64) ([]*entity.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored := repo.byOwner[userID]
	results := make([]*entity.Result, 0, len(stored))
	for i := range stored {
		result := stored[i]
		results = append(results, &result)
	}

	return results, nil
}
