package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/query"
)

func ptr[T any](v T) *T { return &v }

func TestPredicate(t *testing.T) {
	tests := []struct {
		name   string
		params FilterParams
		want   listing.Predicate
	}{
		{
			name:   "no params yields public default",
			params: FilterParams{},
			want:   listing.Predicate{Statuses: []vo.ListingStatus{vo.StatusApproved, vo.StatusSold}},
		},
		{
			name:   "text filters",
			params: FilterParams{Title: " Villa ", Category: "Villa", LocationValue: "Limassol"},
			want: listing.Predicate{
				TitleContains: "Villa",
				Category:      "Villa",
				LocationValue: "Limassol",
				Statuses:      vo.PublicStatuses(),
			},
		},
		{
			name:   "valid listing and feature type",
			params: FilterParams{ListingType: "DAILY_RENT", FeatureType: "EXPERIENCES"},
			want: listing.Predicate{
				ListingType: ptr(vo.ListingTypeDailyRent),
				FeatureType: ptr(vo.FeatureTypeExperiences),
				Statuses:    vo.PublicStatuses(),
			},
		},
		{
			name:   "unknown listing and feature type are ignored",
			params: FilterParams{ListingType: "LEASE", FeatureType: "homes"},
			want:   listing.Predicate{Statuses: vo.PublicStatuses()},
		},
		{
			name:   "snake_case price wins over alias",
			params: FilterParams{MinPrice: "100000", MinPriceAlt: "1", MaxPrice: "", MaxPriceAlt: "500000"},
			want: listing.Predicate{
				MinPrice: ptr(int64(100000)),
				MaxPrice: ptr(int64(500000)),
				Statuses: vo.PublicStatuses(),
			},
		},
		{
			name:   "malformed price bound dropped independently",
			params: FilterParams{MinPrice: "cheap", MaxPrice: "500000"},
			want: listing.Predicate{
				MaxPrice: ptr(int64(500000)),
				Statuses: vo.PublicStatuses(),
			},
		},
		{
			name:   "out-of-range price bound dropped",
			params: FilterParams{MinPrice: "9223372036854775807.5", MaxPrice: "500000"},
			want: listing.Predicate{
				MaxPrice: ptr(int64(500000)),
				Statuses: vo.PublicStatuses(),
			},
		},
		{
			name:   "bedrooms sentinel and bathrooms exact",
			params: FilterParams{Bedrooms: "5+", Bathrooms: "2"},
			want: listing.Predicate{
				Bedrooms:  &listing.CountFilter{Value: 5, AtLeast: true},
				Bathrooms: &listing.CountFilter{Value: 2},
				Statuses:  vo.PublicStatuses(),
			},
		},
		{
			name:   "malformed and zero counts dropped",
			params: FilterParams{Bedrooms: "abc", Bathrooms: "0"},
			want:   listing.Predicate{Statuses: vo.PublicStatuses()},
		},
		{
			name:   "explicit status used verbatim",
			params: FilterParams{Status: "Pending"},
			want:   listing.Predicate{Statuses: []vo.ListingStatus{"Pending"}},
		},
		{
			name:   "explicit status wins over showAll and may be unknown",
			params: FilterParams{Status: "Archived", ShowAll: true},
			want:   listing.Predicate{Statuses: []vo.ListingStatus{"Archived"}},
		},
		{
			name:   "showAll without status lifts restriction",
			params: FilterParams{ShowAll: true},
			want:   listing.Predicate{},
		},
		{
			name:   "owner scope",
			params: FilterParams{ShowAll: true, UserID: 9},
			want:   listing.Predicate{UserID: ptr(uint(9))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Predicate(tt.params))
		})
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		page, size string
		want       query.PageFilter
	}{
		{"", "", query.PageFilter{Page: 1, PageSize: 9}},
		{"3", "12", query.PageFilter{Page: 3, PageSize: 12}},
		{"x", "-4", query.PageFilter{Page: 1, PageSize: 9}},
		{"0", "1000", query.PageFilter{Page: 1, PageSize: 100}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Page(tt.page, tt.size), "page=%q size=%q", tt.page, tt.size)
	}
}

// The browse example from the product requirements: among ten listings only
// the five-bedroom villa priced 150000 satisfies the combined filter.
func TestBuild_VillaScenario(t *testing.T) {
	p, page := Build(FilterParams{Category: "Villa", MinPrice: "100000", MaxPrice: "500000", Bedrooms: "5+"})

	fixture := scenarioFixture()
	var matched []string
	for _, l := range fixture {
		if p.Matches(l) {
			matched = append(matched, l.Title())
		}
	}

	assert.Equal(t, []string{"Villa A"}, matched)
	assert.Equal(t, query.PageFilter{Page: 1, PageSize: 9}, page)
}

func TestBuild_MalformedBedroomsEqualsNoFilter(t *testing.T) {
	withBad := Predicate(FilterParams{Category: "Villa", Bedrooms: "abc"})
	without := Predicate(FilterParams{Category: "Villa"})
	assert.Equal(t, without, withBad)
}

func scenarioFixture() []*listing.Listing {
	mk := func(id uint, title, category string, bedrooms, price int64) *listing.Listing {
		return listing.ReconstructListing(listing.Snapshot{
			ID:          id,
			Title:       title,
			Category:    category,
			Bedrooms:    &bedrooms,
			Price:       price,
			Status:      vo.StatusApproved,
			ListingType: vo.ListingTypeSale,
			FeatureType: vo.FeatureTypeHomes,
			UserID:      1,
		})
	}
	fixture := []*listing.Listing{
		mk(1, "Villa A", "Villa", 5, 150000),
		mk(2, "Villa B", "Villa", 6, 600000),
		mk(3, "Villa C", "Villa", 3, 200000),
	}
	for i := 0; i < 7; i++ {
		fixture = append(fixture, mk(uint(10+i), "Flat", "Apartment", 5, 150000))
	}
	return fixture
}
