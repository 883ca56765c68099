package listing

import "context"

// Owner is the display data of the user who owns a listing.
type Owner struct {
	ID    uint
	Name  string
	Email string
	Image string
}

// OwnerLookup resolves owners for a page of listings in one batch. Ids with
// no matching user are simply absent from the result.
type OwnerLookup interface {
	FindOwners(ctx context.Context, ids []uint) (map[uint]*Owner, error)
}

// OwnerIDs returns the distinct owner ids of listings in first-seen order.
func OwnerIDs(listings []*Listing) []uint {
	seen := make(map[uint]struct{}, len(listings))
	ids := make([]uint, 0, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.userID]; ok {
			continue
		}
		seen[l.userID] = struct{}{}
		ids = append(ids, l.userID)
	}
	return ids
}
