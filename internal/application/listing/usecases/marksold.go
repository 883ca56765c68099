package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type MarkSoldCommand struct {
	Actor     authorization.Actor
	ListingID uint
}

type MarkSoldUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewMarkSoldUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *MarkSoldUseCase {
	return &MarkSoldUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

func (uc *MarkSoldUseCase) Execute(ctx context.Context, cmd MarkSoldCommand) (*dto.ListingDTO, error) {
	uc.logger.Infow("executing mark sold use case", "listing_id", cmd.ListingID, "user_id", cmd.Actor.UserID)

	l, err := loadListing(ctx, uc.repo, cmd.ListingID)
	if err != nil {
		return uc.tracker.result(ctx, "mark_sold", nil, err)
	}

	oldStatus := l.Status()
	if err := uc.lifecycle.MarkSold(cmd.Actor, l); err != nil {
		uc.logger.Warnw("mark sold rejected", "listing_id", cmd.ListingID, "error", err)
		return uc.tracker.result(ctx, "mark_sold", nil, err)
	}

	if err := persistStatus(ctx, uc.repo, l, oldStatus); err != nil {
		uc.logger.Errorw("failed to mark listing sold", "listing_id", cmd.ListingID, "error", err)
		return uc.tracker.result(ctx, "mark_sold", nil, err)
	}

	uc.logger.Infow("listing marked sold", "listing_id", l.ID())
	return uc.tracker.result(ctx, "mark_sold", l, nil)
}
