package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// DeleteUserListingsCommand removes every listing of a user that is being
// deleted.
type DeleteUserListingsCommand struct {
	Actor  authorization.Actor
	UserID uint
}

type DeleteUserListingsResult struct {
	Deleted int64
}

type DeleteUserListingsUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewDeleteUserListingsUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *DeleteUserListingsUseCase {
	return &DeleteUserListingsUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

func (uc *DeleteUserListingsUseCase) Execute(ctx context.Context, cmd DeleteUserListingsCommand) (*DeleteUserListingsResult, error) {
	uc.logger.Infow("executing delete user listings use case", "user_id", cmd.UserID, "admin_id", cmd.Actor.UserID)

	if err := uc.lifecycle.Require(cmd.Actor, authorization.ActionPurgeUser); err != nil {
		return nil, err
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("Validation failed: userId", "userId is required")
	}

	deleted, err := uc.repo.DeleteByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to delete user listings", "user_id", cmd.UserID, "error", err)
		err = storageError(err)
		uc.tracker.done(ctx, "delete_user", err)
		return nil, err
	}
	uc.tracker.done(ctx, "delete_user", nil)

	uc.logger.Infow("user listings deleted", "user_id", cmd.UserID, "deleted", deleted)
	return &DeleteUserListingsResult{Deleted: deleted}, nil
}
