package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type ListingStatsQuery struct {
	Actor authorization.Actor
}

// ListingStatsUseCase serves the dashboard status breakdown, read through
// the stats cache.
type ListingStatsUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	cache     StatsCache
	metrics   Metrics
	logger    logger.Interface
}

func NewListingStatsUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	cache StatsCache,
	metrics Metrics,
	logger logger.Interface,
) *ListingStatsUseCase {
	return &ListingStatsUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
	}
}

func (uc *ListingStatsUseCase) Execute(ctx context.Context, q ListingStatsQuery) (*dto.ListingStatsDTO, error) {
	if err := uc.lifecycle.Require(q.Actor, authorization.ActionViewAll); err != nil {
		return nil, err
	}

	if cached := uc.fromCache(ctx); cached != nil {
		return cached, nil
	}

	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count listings by status, returning zeros", "error", err)
		recordFallback(uc.metrics, "stats")
		return dto.ToListingStatsDTO(nil), nil
	}

	stats := dto.ToListingStatsDTO(counts)
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, stats); err != nil {
			uc.logger.Warnw("failed to cache listing stats", "error", err)
		}
	}
	return stats, nil
}

func (uc *ListingStatsUseCase) fromCache(ctx context.Context) *dto.ListingStatsDTO {
	if uc.cache == nil {
		return nil
	}
	stats, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Warnw("listing stats cache unavailable", "error", err)
		stats = nil
	}
	if uc.metrics != nil {
		uc.metrics.RecordStatsCache(stats != nil)
	}
	return stats
}
