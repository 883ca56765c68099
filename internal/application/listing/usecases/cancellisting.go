package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type CancelListingCommand struct {
	Actor     authorization.Actor
	ListingID uint
}

type CancelListingUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewCancelListingUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *CancelListingUseCase {
	return &CancelListingUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

func (uc *CancelListingUseCase) Execute(ctx context.Context, cmd CancelListingCommand) (*dto.ListingDTO, error) {
	uc.logger.Infow("executing cancel listing use case", "listing_id", cmd.ListingID, "user_id", cmd.Actor.UserID)

	l, err := loadListing(ctx, uc.repo, cmd.ListingID)
	if err != nil {
		return uc.tracker.result(ctx, "cancel", nil, err)
	}

	oldStatus := l.Status()
	if err := uc.lifecycle.Cancel(cmd.Actor, l); err != nil {
		uc.logger.Warnw("cancel rejected", "listing_id", cmd.ListingID, "error", err)
		return uc.tracker.result(ctx, "cancel", nil, err)
	}

	if err := persistStatus(ctx, uc.repo, l, oldStatus); err != nil {
		uc.logger.Errorw("failed to cancel listing", "listing_id", cmd.ListingID, "error", err)
		return uc.tracker.result(ctx, "cancel", nil, err)
	}

	uc.logger.Infow("listing canceled successfully", "listing_id", l.ID(), "old_status", oldStatus)
	return uc.tracker.result(ctx, "cancel", l, nil)
}
