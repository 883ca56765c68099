package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
)

func TestPredicate_Matches(t *testing.T) {
	rent := vo.ListingTypeRent
	services := vo.FeatureTypeServices
	owner := uint(7)

	l, err := NewListing(7, validFields(), vo.StatusApproved)
	require.NoError(t, err)

	tests := []struct {
		name string
		p    Predicate
		want bool
	}{
		{"empty predicate", Predicate{}, true},
		{"title is case-insensitive substring", Predicate{TitleContains: "villa WITH"}, true},
		{"category exact", Predicate{Category: "villa"}, false},
		{"location exact", Predicate{LocationValue: "Limassol"}, true},
		{"listing type", Predicate{ListingType: &rent}, false},
		{"feature type", Predicate{FeatureType: &services}, false},
		{"price inside range", Predicate{MinPrice: int64Ptr(100000), MaxPrice: int64Ptr(150000)}, true},
		{"price above max", Predicate{MaxPrice: int64Ptr(149999)}, false},
		{"bedrooms 5+", Predicate{Bedrooms: &CountFilter{Value: 5, AtLeast: true}}, true},
		{"bedrooms exact 4", Predicate{Bedrooms: &CountFilter{Value: 4}}, false},
		{"bathrooms on null column", Predicate{Bathrooms: &CountFilter{Value: 1}}, false},
		{"public statuses", PublicPredicate(), true},
		{"verbatim status", Predicate{Statuses: []vo.ListingStatus{"Pending"}}, false},
		{"owner", Predicate{UserID: &owner}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Matches(l))
		})
	}
}

func TestOwnerIDs(t *testing.T) {
	a := ReconstructListing(Snapshot{ID: 1, UserID: 3})
	b := ReconstructListing(Snapshot{ID: 2, UserID: 5})
	c := ReconstructListing(Snapshot{ID: 3, UserID: 3})

	assert.Equal(t, []uint{3, 5}, OwnerIDs([]*Listing{a, b, c}))
	assert.Empty(t, OwnerIDs(nil))
}
