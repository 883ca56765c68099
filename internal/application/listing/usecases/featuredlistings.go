package usecases

import (
	"context"
	"strings"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/constants"
	"github.com/estately-inc/estately/internal/shared/logger"
	"github.com/estately-inc/estately/internal/shared/query"
)

// categoryAll selects every category in a featured section.
const categoryAll = "all"

type FeaturedListingsQuery struct {
	Category string
	Limit    int
}

// FeaturedListingsUseCase feeds home page sections with the newest
// approved listings.
type FeaturedListingsUseCase struct {
	repo    listing.Repository
	owners  listing.OwnerLookup
	metrics Metrics
	logger  logger.Interface
}

func NewFeaturedListingsUseCase(
	repo listing.Repository,
	owners listing.OwnerLookup,
	metrics Metrics,
	logger logger.Interface,
) *FeaturedListingsUseCase {
	return &FeaturedListingsUseCase{
		repo:    repo,
		owners:  owners,
		metrics: metrics,
		logger:  logger,
	}
}

func (uc *FeaturedListingsUseCase) Execute(ctx context.Context, q FeaturedListingsQuery) ([]*dto.ListingDTO, error) {
	predicate := listing.Predicate{Statuses: []vo.ListingStatus{vo.StatusApproved}}
	if category := strings.TrimSpace(q.Category); category != "" && !strings.EqualFold(category, categoryAll) {
		predicate.Category = category
	}

	page := query.PageFilter{Page: 1, PageSize: FeaturedLimit(q.Limit)}

	items, _, err := uc.repo.FindPage(ctx, predicate, page)
	if err != nil {
		uc.logger.Errorw("failed to load featured listings, returning none", "category", q.Category, "error", err)
		recordFallback(uc.metrics, "featured")
		return []*dto.ListingDTO{}, nil
	}

	return dto.ToListingDTOs(items, resolveOwners(ctx, uc.owners, items, uc.logger)), nil
}

// FeaturedLimit applies the default and the hard cap to a section size.
func FeaturedLimit(limit int) int {
	if limit <= 0 {
		return constants.DefaultFeaturedLimit
	}
	if limit > constants.MaxFeaturedLimit {
		return constants.MaxFeaturedLimit
	}
	return limit
}
