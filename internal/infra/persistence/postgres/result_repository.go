package postgres

import (
	"context"

	"areacheck/internal/domain/entity"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/domain/repository"
	"areacheck/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository is the constructor for resultRepository.
func NewResultRepository(db *gorm.DB) repository.ResultRepository {
	return &resultRepository{db: db}
}

// Insert stores the result and fills in its generated id and timestamp.
func (repo *resultRepository) Insert(ctx context.Context, result *entity.Result) error {
	resultM := fromResultDomain(result)

	if err := repo.db.WithContext(ctx).Create(resultM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert result")
	}

	result.ID = resultM.ID
	result.CreatedAt = resultM.CreatedAt

	return nil
}

// ListByOwner returns the user's results ordered by id, i.e. insertion order.
func (repo *resultRepository) ListByOwner(ctx context.Context, userID int64) ([]*entity.Result, error) {
	var rows []model.ResultModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list results")
	}

	results := make([]*entity.Result, 0, len(rows))
	for i := range rows {
		results = append(results, toResultDomain(&rows[i]))
	}

	return results, nil
}

func toResultDomain(data *model.ResultModel) *entity.Result {
	return &entity.Result{
		ID:        data.ID,
		UserID:    data.UserID,
		X:         data.X,
		Y:         data.Y,
		R:         data.R,
		Hit:       data.Hit,
		CreatedAt: data.CreatedAt,
	}
}

func fromResultDomain(data *entity.Result) *model.ResultModel {
	return &model.ResultModel{
		ID:        data.ID,
		UserID:    data.UserID,
		X:         data.X,
		Y:         data.Y,
		R:         data.R,
		Hit:       data.Hit,
		CreatedAt: data.CreatedAt,
	}
}
