package listing

import (
	"slices"
	"strings"

	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
)

// CountFilter matches bedrooms or bathrooms either exactly or as a lower
// bound ("5+").
type CountFilter struct {
	Value   int64
	AtLeast bool
}

func (c CountFilter) matches(v *int64) bool {
	if v == nil {
		return false
	}
	if c.AtLeast {
		return *v >= c.Value
	}
	return *v == c.Value
}

// Predicate is the normalized, storage-agnostic listing filter. Zero-valued
// fields do not constrain the result.
type Predicate struct {
	TitleContains string
	Category      string
	LocationValue string
	ListingType   *vo.ListingType
	FeatureType   *vo.FeatureType
	MinPrice      *int64
	MaxPrice      *int64
	Bedrooms      *CountFilter
	Bathrooms     *CountFilter
	// Statuses restricts the status column; values are used verbatim and
	// may lie outside the known enum. Empty means no restriction.
	Statuses []vo.ListingStatus
	UserID   *uint
}

// PublicPredicate is the default browse predicate: publicly visible
// statuses only.
func PublicPredicate() Predicate {
	return Predicate{Statuses: vo.PublicStatuses()}
}

// Matches evaluates the predicate against a single listing.
func (p Predicate) Matches(l *Listing) bool {
	if p.TitleContains != "" &&
		!strings.Contains(strings.ToLower(l.title), strings.ToLower(p.TitleContains)) {
		return false
	}
	if p.Category != "" && l.category != p.Category {
		return false
	}
	if p.LocationValue != "" && (l.location == nil || l.location.Label != p.LocationValue) {
		return false
	}
	if p.ListingType != nil && l.listingType != *p.ListingType {
		return false
	}
	if p.FeatureType != nil && l.featureType != *p.FeatureType {
		return false
	}
	if p.MinPrice != nil && l.price < *p.MinPrice {
		return false
	}
	if p.MaxPrice != nil && l.price > *p.MaxPrice {
		return false
	}
	if p.Bedrooms != nil && !p.Bedrooms.matches(l.bedrooms) {
		return false
	}
	if p.Bathrooms != nil && !p.Bathrooms.matches(l.bathrooms) {
		return false
	}
	if len(p.Statuses) > 0 && !slices.Contains(p.Statuses, l.status) {
		return false
	}
	if p.UserID != nil && l.userID != *p.UserID {
		return false
	}
	return true
}
