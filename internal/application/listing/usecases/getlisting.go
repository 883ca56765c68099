package usecases

import (
	"context"
	"strings"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// GetListingQuery selects a listing by ID or, when ID is zero, by slug.
type GetListingQuery struct {
	ID    uint
	Slug  string
	Actor authorization.Actor
}

type GetListingUseCase struct {
	repo      listing.Repository
	owners    listing.OwnerLookup
	lifecycle *listing.Lifecycle
	renderer  DescriptionRenderer
	logger    logger.Interface
}

func NewGetListingUseCase(
	repo listing.Repository,
	owners listing.OwnerLookup,
	lifecycle *listing.Lifecycle,
	renderer DescriptionRenderer,
	logger logger.Interface,
) *GetListingUseCase {
	return &GetListingUseCase{
		repo:      repo,
		owners:    owners,
		lifecycle: lifecycle,
		renderer:  renderer,
		logger:    logger,
	}
}

// Execute returns the listing with its owner and rendered description.
// Listings outside the public statuses are only visible to their owner and
// to staff.
func (uc *GetListingUseCase) Execute(ctx context.Context, q GetListingQuery) (*dto.ListingDTO, error) {
	l, ref, err := uc.find(ctx, q)
	if err != nil {
		uc.logger.Errorw("failed to get listing", "ref", ref, "error", err)
		return nil, storageError(err)
	}
	if l == nil || !uc.visible(q.Actor, l) {
		return nil, listing.ErrNotFound(ref)
	}

	owners := resolveOwners(ctx, uc.owners, []*listing.Listing{l}, uc.logger)
	result := dto.ToListingDTO(l, owners[l.UserID()])

	if uc.renderer != nil {
		html, err := uc.renderer.RenderDescription(l.Description())
		if err != nil {
			uc.logger.Warnw("failed to render listing description", "listing_id", l.ID(), "error", err)
		} else {
			result.DescriptionHTML = html
		}
	}
	return result, nil
}

func (uc *GetListingUseCase) find(ctx context.Context, q GetListingQuery) (*listing.Listing, any, error) {
	if q.ID != 0 {
		l, err := uc.repo.FindByID(ctx, q.ID)
		return l, q.ID, err
	}
	slug := strings.TrimSpace(q.Slug)
	if slug == "" {
		return nil, slug, errors.NewValidationError("Validation failed: slug", "id or slug is required")
	}
	l, err := uc.repo.FindBySlug(ctx, slug)
	return l, slug, err
}

func (uc *GetListingUseCase) visible(actor authorization.Actor, l *listing.Listing) bool {
	return l.Status().IsPubliclyVisible() ||
		l.IsOwnedBy(actor.UserID) ||
		uc.lifecycle.Can(actor, authorization.ActionViewAll)
}
