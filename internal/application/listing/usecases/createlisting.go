package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type CreateListingCommand struct {
	Actor  authorization.Actor
	Fields listing.Fields
}

type CreateListingUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	tracker   writeTracker
	logger    logger.Interface
}

func NewCreateListingUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *CreateListingUseCase {
	return &CreateListingUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		tracker:   newWriteTracker(cache, metrics, logger),
		logger:    logger,
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, cmd CreateListingCommand) (*dto.ListingDTO, error) {
	uc.logger.Infow("executing create listing use case", "user_id", cmd.Actor.UserID, "title", cmd.Fields.Title)

	l, err := uc.lifecycle.Create(cmd.Actor, cmd.Fields)
	if err != nil {
		uc.logger.Warnw("listing rejected", "user_id", cmd.Actor.UserID, "error", err)
		return uc.tracker.result(ctx, "create", nil, err)
	}

	if err := uc.repo.Create(ctx, l); err != nil {
		uc.logger.Errorw("failed to create listing", "user_id", cmd.Actor.UserID, "error", err)
		return uc.tracker.result(ctx, "create", nil, storageError(err))
	}

	uc.logger.Infow("listing created successfully",
		"listing_id", l.ID(),
		"slug", l.Slug(),
		"status", l.Status(),
	)
	return uc.tracker.result(ctx, "create", l, nil)
}
