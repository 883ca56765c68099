package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type SetStatusCommand struct {
	Actor     authorization.Actor
	ListingID uint
	Status    string
}

type SetStatusUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewSetStatusUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *SetStatusUseCase {
	return &SetStatusUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

func (uc *SetStatusUseCase) Execute(ctx context.Context, cmd SetStatusCommand) (*dto.ListingDTO, error) {
	uc.logger.Infow("executing set status use case", "listing_id", cmd.ListingID, "status", cmd.Status)

	// role is checked before the lookup
	if err := uc.lifecycle.Require(cmd.Actor, authorization.ActionSetStatus); err != nil {
		return uc.tracker.result(ctx, "set_status", nil, err)
	}

	l, err := loadListing(ctx, uc.repo, cmd.ListingID)
	if err != nil {
		return uc.tracker.result(ctx, "set_status", nil, err)
	}

	oldStatus := l.Status()
	if err := uc.lifecycle.SetStatus(cmd.Actor, l, cmd.Status); err != nil {
		uc.logger.Warnw("status change rejected", "listing_id", cmd.ListingID, "status", cmd.Status, "error", err)
		return uc.tracker.result(ctx, "set_status", nil, err)
	}

	if err := persistStatus(ctx, uc.repo, l, oldStatus); err != nil {
		uc.logger.Errorw("failed to update listing status", "listing_id", cmd.ListingID, "error", err)
		return uc.tracker.result(ctx, "set_status", nil, err)
	}

	uc.logger.Infow("listing status changed successfully",
		"listing_id", l.ID(),
		"old_status", oldStatus,
		"new_status", l.Status(),
	)
	return uc.tracker.result(ctx, "set_status", l, nil)
}
