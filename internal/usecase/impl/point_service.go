package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "areacheck/internal/delivery/context"
	"areacheck/internal/domain/entity"
	domainerrors "areacheck/internal/domain/errors"
	"areacheck/internal/domain/repository"
	"areacheck/internal/domain/service"
	"areacheck/internal/errors"
	"areacheck/internal/usecase"

	"go.uber.org/fx"
)

// pointService implements the PointUsecase interface.
type pointService struct {
	userRepo   repository.UserRepository
	resultRepo repository.ResultRepository
	checker    service.AreaChecker
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// PointServiceParams holds dependencies for PointService, injected by Fx.
type PointServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	ResultRepo repository.ResultRepository
	Checker    service.AreaChecker
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewPointService is the constructor for pointService.
func NewPointService(params PointServiceParams) usecase.PointUsecase {
	return &pointService{
		userRepo:   params.UserRepo,
		resultRepo: params.ResultRepo,
		checker:    params.Checker,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *pointService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit evaluates the point for the user and records exactly one result.
func (srv *pointService) Submit(ctx context.Context, input *usecase.SubmitPointInput) (*usecase.SubmitPointOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUnknownUser, "submit for %q", input.Username)
		}

		return nil, persistenceError(err, "failed to load submitting user")
	}

	hit := srv.checker.Contains(input.X, input.Y, input.R)
	if input.Result != nil && *input.Result != hit {
		srv.log(ctx).Debug("Ignoring client-supplied result",
			slog.Bool("claimed", *input.Result),
			slog.Bool("computed", hit),
		)
	}

	result := &entity.Result{
		UserID: user.ID,
		X:      input.X,
		Y:      input.Y,
		R:      input.R,
		Hit:    hit,
	}
	if err := srv.resultRepo.Insert(ctx, result); err != nil {
		srv.log(ctx).Error("Failed to store result",
			slog.Int64("userID", user.ID),
			slog.Any("error", err),
		)

		return nil, persistenceError(err, "failed to store result")
	}

	srv.publish(ctx, user, result)

	return &usecase.SubmitPointOutput{Result: hit, ResultID: result.ID}, nil
}

// publish announces the stored result; a failure here never fails the submission.
func (srv *pointService) publish(ctx context.Context, user *entity.User, result *entity.Result) {
	if srv.publisher == nil {
		return
	}

	recordedAt := result.CreatedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	event := &service.ResultRecordedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ResultID:   result.ID,
		UserID:     user.ID,
		Username:   user.Username,
		X:          result.X,
		Y:          result.Y,
		R:          result.R,
		Hit:        result.Hit,
		RecordedAt: recordedAt,
	}
	if err := srv.publisher.PublishResultRecorded(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish result event",
			slog.Int64("resultID", result.ID),
			slog.Any("error", err),
		)
	}
}

// History returns the user's results in insertion order.
func (srv *pointService) History(ctx context.Context, userID int64) (*usecase.HistoryOutput, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrUnknownUser, "history for user %d", userID)
		}

		return nil, persistenceError(err, "failed to load user")
	}

	results, err := srv.resultRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, persistenceError(err, "failed to list results")
	}

	return &usecase.HistoryOutput{Results: results}, nil
}
