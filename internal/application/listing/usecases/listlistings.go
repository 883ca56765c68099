package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/application/listing/querybuilder"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/logger"
	"github.com/estately-inc/estately/internal/shared/query"
)

type ListListingsQuery struct {
	Params querybuilder.FilterParams
	Actor  authorization.Actor
	// OwnerScoped restricts the page to the actor's own listings in every
	// status.
	OwnerScoped bool
}

type ListListingsResult struct {
	Items  []*dto.ListingDTO
	Total  int64
	Page   query.PageFilter
	Window query.Window
}

type ListListingsUseCase struct {
	repo      listing.Repository
	owners    listing.OwnerLookup
	lifecycle *listing.Lifecycle
	metrics   Metrics
	logger    logger.Interface
}

func NewListListingsUseCase(
	repo listing.Repository,
	owners listing.OwnerLookup,
	lifecycle *listing.Lifecycle,
	metrics Metrics,
	logger logger.Interface,
) *ListListingsUseCase {
	return &ListListingsUseCase{
		repo:      repo,
		owners:    owners,
		lifecycle: lifecycle,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute never surfaces storage failures: the caller gets an empty page.
func (uc *ListListingsUseCase) Execute(ctx context.Context, q ListListingsQuery) (*ListListingsResult, error) {
	params, err := scopeParams(uc.lifecycle, q.Params, q.Actor, q.OwnerScoped)
	if err != nil {
		return nil, err
	}

	predicate, page := querybuilder.Build(params)

	items, total, err := uc.repo.FindPage(ctx, predicate, page)
	if err != nil {
		uc.logger.Errorw("failed to list listings, returning empty page", "error", err)
		recordFallback(uc.metrics, "list")
		items, total = nil, 0
	}

	owners := resolveOwners(ctx, uc.owners, items, uc.logger)

	return &ListListingsResult{
		Items:  dto.ToListingDTOs(items, owners),
		Total:  total,
		Page:   page,
		Window: page.WindowFor(total, len(items)),
	}, nil
}

// scopeParams drops status overrides the actor may not use and pins owner
// scoped views to the actor.
func scopeParams(lc *listing.Lifecycle, params querybuilder.FilterParams, actor authorization.Actor, ownerScoped bool) (querybuilder.FilterParams, error) {
	if ownerScoped {
		if !actor.IsAuthenticated() {
			return params, errors.NewUnauthorizedError("authentication required")
		}
		params.UserID = actor.UserID
		params.ShowAll = true
		return params, nil
	}

	if !lc.Can(actor, authorization.ActionViewAll) {
		params.Status = ""
		params.ShowAll = false
	}
	return params, nil
}

func recordFallback(m Metrics, operation string) {
	if m != nil {
		m.RecordReadFallback(operation)
	}
}
