package listing

import (
	"context"

	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/query"
)

// Repository is the sole reader and writer of listing rows.
//
// Lookups return (nil, nil) when the listing does not exist. Create and
// Update own slug uniqueness: Create always assigns a slug, Update assigns a
// new one only when regenerateSlug is set.
type Repository interface {
	FindPage(ctx context.Context, p Predicate, page query.PageFilter) ([]*Listing, int64, error)
	FindByID(ctx context.Context, id uint) (*Listing, error)
	FindBySlug(ctx context.Context, slug string) (*Listing, error)
	Create(ctx context.Context, l *Listing) error
	Update(ctx context.Context, l *Listing, regenerateSlug bool) error
	// Delete removes the row; deleting a missing row is not an error.
	Delete(ctx context.Context, id uint) error
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)
	Count(ctx context.Context, p Predicate) (int64, error)
	// CountByStatus groups every row by status; legacy rows without a
	// status are reported under the empty status.
	CountByStatus(ctx context.Context) (map[vo.ListingStatus]int64, error)
}
