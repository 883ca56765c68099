package usecases

import (
	"context"

	"github.com/estately-inc/estately/internal/application/listing/dto"
)

type ListListingsExecutor interface {
	Execute(ctx context.Context, query ListListingsQuery) (*ListListingsResult, error)
}

type CountListingsExecutor interface {
	Execute(ctx context.Context, query CountListingsQuery) (int64, error)
}

type FeaturedListingsExecutor interface {
	Execute(ctx context.Context, query FeaturedListingsQuery) ([]*dto.ListingDTO, error)
}

type GetListingExecutor interface {
	Execute(ctx context.Context, query GetListingQuery) (*dto.ListingDTO, error)
}

type CreateListingExecutor interface {
	Execute(ctx context.Context, cmd CreateListingCommand) (*dto.ListingDTO, error)
}

type UpdateListingExecutor interface {
	Execute(ctx context.Context, cmd UpdateListingCommand) (*UpdateListingResult, error)
}

type SetStatusExecutor interface {
	Execute(ctx context.Context, cmd SetStatusCommand) (*dto.ListingDTO, error)
}

type ModerateListingExecutor interface {
	Execute(ctx context.Context, cmd ModerateListingCommand) (*dto.ListingDTO, error)
}

type CancelListingExecutor interface {
	Execute(ctx context.Context, cmd CancelListingCommand) (*dto.ListingDTO, error)
}

type MarkSoldExecutor interface {
	Execute(ctx context.Context, cmd MarkSoldCommand) (*dto.ListingDTO, error)
}

type SetPremiumExecutor interface {
	Execute(ctx context.Context, cmd SetPremiumCommand) (*dto.ListingDTO, error)
}

type DeleteListingExecutor interface {
	Execute(ctx context.Context, cmd DeleteListingCommand) (*DeleteListingResult, error)
}

type DeleteUserListingsExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserListingsCommand) (*DeleteUserListingsResult, error)
}

type ListingStatsExecutor interface {
	Execute(ctx context.Context, query ListingStatsQuery) (*dto.ListingStatsDTO, error)
}

// StatsCache holds the dashboard breakdown between writes. Get returns
// (nil, nil) on a miss.
type StatsCache interface {
	Get(ctx context.Context) (*dto.ListingStatsDTO, error)
	Set(ctx context.Context, stats *dto.ListingStatsDTO) error
	Invalidate(ctx context.Context) error
}

// Metrics receives listing operation outcomes.
type Metrics interface {
	RecordReadFallback(operation string)
	RecordWrite(operation string, err error)
	RecordStatsCache(hit bool)
}

// DescriptionRenderer turns a markdown description into safe HTML.
type DescriptionRenderer interface {
	RenderDescription(source string) (string, error)
}
