// Package persistence selects the repository backend configured under storage.driver.
package persistence

import (
	"log/slog"

	"areacheck/config"
	"areacheck/internal/domain/repository"
	"areacheck/internal/errors"
	"areacheck/internal/infra/persistence/memory"
	"areacheck/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the parameters required to build the repositories.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories handed to the use cases.
type Repositories struct {
	fx.Out

	Users   repository.UserRepository
	Results repository.ResultRepository
}

// New builds the repositories for the configured driver.
func New(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	if driver == "" {
		driver = config.StorageDriverMemory
	}

	switch driver {
	case config.StorageDriverMemory:
		params.Logger.Info("Using in-memory storage")

		return Repositories{
			Users:   memory.NewUserRepository(),
			Results: memory.NewResultRepository(),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return Repositories{
			Users:   postgres.NewUserRepository(db),
			Results: postgres.NewResultRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}
