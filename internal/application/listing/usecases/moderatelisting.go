package usecases

import (
	"context"
	"strings"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// ModerateListingCommand resolves a listing from the moderation queue.
// Decision is Approved or Canceled.
type ModerateListingCommand struct {
	Actor     authorization.Actor
	ListingID uint
	Decision  string
}

type ModerateListingUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewModerateListingUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *ModerateListingUseCase {
	return &ModerateListingUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

func (uc *ModerateListingUseCase) Execute(ctx context.Context, cmd ModerateListingCommand) (*dto.ListingDTO, error) {
	uc.logger.Infow("executing moderate listing use case",
		"listing_id", cmd.ListingID,
		"decision", cmd.Decision,
		"moderator_id", cmd.Actor.UserID,
	)

	if err := uc.lifecycle.Require(cmd.Actor, authorization.ActionModerate); err != nil {
		return uc.tracker.result(ctx, "moderate", nil, err)
	}

	decision, err := vo.NewListingStatus(strings.TrimSpace(cmd.Decision))
	if err != nil {
		return uc.tracker.result(ctx, "moderate", nil,
			errors.NewInvalidStatusError("moderation decision must be Approved or Canceled", cmd.Decision))
	}

	l, err := loadListing(ctx, uc.repo, cmd.ListingID)
	if err != nil {
		return uc.tracker.result(ctx, "moderate", nil, err)
	}

	oldStatus := l.Status()
	if err := uc.lifecycle.Moderate(cmd.Actor, l, decision); err != nil {
		uc.logger.Warnw("moderation rejected", "listing_id", cmd.ListingID, "error", err)
		return uc.tracker.result(ctx, "moderate", nil, err)
	}

	if err := persistStatus(ctx, uc.repo, l, oldStatus); err != nil {
		uc.logger.Errorw("failed to persist moderation decision", "listing_id", cmd.ListingID, "error", err)
		return uc.tracker.result(ctx, "moderate", nil, err)
	}

	uc.logger.Infow("listing moderated successfully", "listing_id", l.ID(), "status", l.Status())
	return uc.tracker.result(ctx, "moderate", l, nil)
}
