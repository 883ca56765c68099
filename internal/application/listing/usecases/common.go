package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// storageError keeps typed errors and turns anything else into a
// retryable storage failure.
func storageError(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewStorageUnavailableError(err)
}

// loadListing fetches a listing or fails with a not-found error.
func loadListing(ctx context.Context, repo listing.Repository, id uint) (*listing.Listing, error) {
	if id == 0 {
		return nil, errors.NewValidationError("Validation failed: id", "id is required")
	}
	l, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if l == nil {
		return nil, listing.ErrNotFound(id)
	}
	return l, nil
}

// resolveOwners looks up owners for a page. A failed lookup degrades every
// owner to null instead of failing the read.
func resolveOwners(ctx context.Context, owners listing.OwnerLookup, listings []*listing.Listing, log logger.Interface) map[uint]*listing.Owner {
	if owners == nil || len(listings) == 0 {
		return nil
	}
	found, err := owners.FindOwners(ctx, listing.OwnerIDs(listings))
	if err != nil {
		log.Warnw("owner lookup failed, returning listings without owners", "error", err)
		return nil
	}
	return found
}

// writeTracker records write outcomes and drops cached stats after a
// successful write.
type writeTracker struct {
	cache   StatsCache
	metrics Metrics
	logger  logger.Interface
}

func newWriteTracker(cache StatsCache, metrics Metrics, log logger.Interface) writeTracker {
	return writeTracker{cache: cache, metrics: metrics, logger: log}
}

func (w writeTracker) done(ctx context.Context, operation string, err error) {
	if w.metrics != nil {
		w.metrics.RecordWrite(operation, err)
	}
	if err != nil || w.cache == nil {
		return
	}
	if cacheErr := w.cache.Invalidate(ctx); cacheErr != nil {
		w.logger.Warnw("failed to invalidate listing stats cache", "operation", operation, "error", cacheErr)
	}
}

func (w writeTracker) result(ctx context.Context, operation string, l *listing.Listing, err error) (*dto.ListingDTO, error) {
	w.done(ctx, operation, err)
	if err != nil {
		return nil, err
	}
	return dto.ToListingDTO(l, nil), nil
}

// persistStatus writes l unless its status is still old.
func persistStatus(ctx context.Context, repo listing.Repository, l *listing.Listing, old vo.ListingStatus) error {
	if l.Status() == old {
		return nil
	}
	if err := repo.Update(ctx, l, false); err != nil {
		return storageError(err)
	}
	return nil
}
