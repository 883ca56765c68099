package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type UpdateListingCommand struct {
	Actor     authorization.Actor
	ListingID uint
	Fields    listing.Fields
}

type UpdateListingResult struct {
	Listing *dto.ListingDTO
	// StatusReset is set when the edit sent an Approved listing back to
	// moderation.
	StatusReset bool
}

type UpdateListingUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewUpdateListingUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *UpdateListingUseCase {
	return &UpdateListingUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, cmd UpdateListingCommand) (*UpdateListingResult, error) {
	uc.logger.Infow("executing update listing use case", "listing_id", cmd.ListingID, "user_id", cmd.Actor.UserID)

	l, err := loadListing(ctx, uc.repo, cmd.ListingID)
	if err != nil {
		uc.tracker.done(ctx, "update", err)
		return nil, err
	}

	edit, err := uc.lifecycle.Edit(cmd.Actor, l, cmd.Fields)
	if err != nil {
		uc.logger.Warnw("listing edit rejected", "listing_id", cmd.ListingID, "error", err)
		uc.tracker.done(ctx, "update", err)
		return nil, err
	}

	if !edit.Changed {
		uc.logger.Infow("listing unchanged, skipping update", "listing_id", cmd.ListingID)
		return &UpdateListingResult{Listing: dto.ToListingDTO(l, nil)}, nil
	}

	if err := uc.repo.Update(ctx, l, edit.TitleChanged); err != nil {
		uc.logger.Errorw("failed to update listing", "listing_id", cmd.ListingID, "error", err)
		err = storageError(err)
		uc.tracker.done(ctx, "update", err)
		return nil, err
	}
	uc.tracker.done(ctx, "update", nil)

	uc.logger.Infow("listing updated successfully",
		"listing_id", l.ID(),
		"slug", l.Slug(),
		"status_reset", edit.StatusReset,
	)
	return &UpdateListingResult{Listing: dto.ToListingDTO(l, nil), StatusReset: edit.StatusReset}, nil
}
