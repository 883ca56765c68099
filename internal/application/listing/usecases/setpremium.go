package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type SetPremiumCommand struct {
	Actor     authorization.Actor
	ListingID uint
	IsPremium bool
}

type SetPremiumUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewSetPremiumUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *SetPremiumUseCase {
	return &SetPremiumUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

func (uc *SetPremiumUseCase) Execute(ctx context.Context, cmd SetPremiumCommand) (*dto.ListingDTO, error) {
	uc.logger.Infow("executing set premium use case", "listing_id", cmd.ListingID, "is_premium", cmd.IsPremium)

	if err := uc.lifecycle.Require(cmd.Actor, authorization.ActionSetPremium); err != nil {
		return uc.tracker.result(ctx, "set_premium", nil, err)
	}

	l, err := loadListing(ctx, uc.repo, cmd.ListingID)
	if err != nil {
		return uc.tracker.result(ctx, "set_premium", nil, err)
	}

	if l.IsPremium() == cmd.IsPremium {
		return dto.ToListingDTO(l, nil), nil
	}

	if err := uc.lifecycle.SetPremium(cmd.Actor, l, cmd.IsPremium); err != nil {
		return uc.tracker.result(ctx, "set_premium", nil, err)
	}

	if err := uc.repo.Update(ctx, l, false); err != nil {
		uc.logger.Errorw("failed to update premium flag", "listing_id", cmd.ListingID, "error", err)
		return uc.tracker.result(ctx, "set_premium", nil, storageError(err))
	}

	uc.logger.Infow("listing premium flag updated", "listing_id", l.ID(), "is_premium", l.IsPremium())
	return uc.tracker.result(ctx, "set_premium", l, nil)
}
