package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type DeleteListingCommand struct {
	Actor     authorization.Actor
	ListingID uint
}

type DeleteListingResult struct {
	// Deleted is false when the listing was already gone.
	Deleted bool
}

type DeleteListingUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewDeleteListingUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *DeleteListingUseCase {
	return &DeleteListingUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

// Execute hard-deletes the listing. Deleting a missing listing succeeds.
func (uc *DeleteListingUseCase) Execute(ctx context.Context, cmd DeleteListingCommand) (*DeleteListingResult, error) {
	uc.logger.Infow("executing delete listing use case", "listing_id", cmd.ListingID, "user_id", cmd.Actor.UserID)

	if !cmd.Actor.IsAuthenticated() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.ListingID == 0 {
		return nil, errors.NewValidationError("Validation failed: id", "id is required")
	}

	l, err := uc.repo.FindByID(ctx, cmd.ListingID)
	if err != nil {
		uc.logger.Errorw("failed to load listing for delete", "listing_id", cmd.ListingID, "error", err)
		err = storageError(err)
		uc.tracker.done(ctx, "delete", err)
		return nil, err
	}
	if l == nil {
		uc.logger.Infow("listing already deleted", "listing_id", cmd.ListingID)
		return &DeleteListingResult{Deleted: false}, nil
	}

	if err := uc.lifecycle.AuthorizeDelete(cmd.Actor, l); err != nil {
		uc.logger.Warnw("delete rejected", "listing_id", cmd.ListingID, "error", err)
		uc.tracker.done(ctx, "delete", err)
		return nil, err
	}

	if err := uc.repo.Delete(ctx, l.ID()); err != nil {
		uc.logger.Errorw("failed to delete listing", "listing_id", cmd.ListingID, "error", err)
		err = storageError(err)
		uc.tracker.done(ctx, "delete", err)
		return nil, err
	}
	uc.tracker.done(ctx, "delete", nil)

	uc.logger.Infow("listing deleted successfully", "listing_id", cmd.ListingID)
	return &DeleteListingResult{Deleted: true}, nil
}
