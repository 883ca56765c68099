package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/querybuilder"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

type CountListingsQuery struct {
	Params      querybuilder.FilterParams
	Actor       authorization.Actor
	OwnerScoped bool
}

type CountListingsUseCase struct {
	repo      listing.Repository
	lifecycle *listing.Lifecycle
	metrics   Metrics
	logger    logger.Interface
}

func NewCountListingsUseCase(
	repo listing.Repository,
	lifecycle *listing.Lifecycle,
	metrics Metrics,
	logger logger.Interface,
) *CountListingsUseCase {
	return &CountListingsUseCase{
		repo:      repo,
		lifecycle: lifecycle,
		metrics:   metrics,
		logger:    logger,
	}
}

func (uc *CountListingsUseCase) Execute(ctx context.Context, q CountListingsQuery) (int64, error) {
	params, err := scopeParams(uc.lifecycle, q.Params, q.Actor, q.OwnerScoped)
	if err != nil {
		return 0, err
	}

	count, err := uc.repo.Count(ctx, querybuilder.Predicate(params))
	if err != nil {
		uc.logger.Errorw("failed to count listings, returning zero", "error", err)
		recordFallback(uc.metrics, "count")
		return 0, nil
	}
	return count, nil
}
