// Package querybuilder turns raw browse parameters into a normalized listing
// predicate and pagination window. It never fails: a malformed parameter
// simply does not constrain the result.
package querybuilder

// FilterParams holds browse parameters exactly as received. Every field is
// optional; MinPriceAlt and MaxPriceAlt carry the camelCase aliases
// (minPrice, maxPrice) accepted for older callers.
type FilterParams struct {
	Category      string
	LocationValue string
	Title         string
	MinPrice      string
	MinPriceAlt   string
	MaxPrice      string
	MaxPriceAlt   string
	Bedrooms      string
	Bathrooms     string
	ListingType   string
	FeatureType   string
	Page          string
	PageSize      string
	Status        string
	ShowAll       bool
	// UserID scopes the query to one owner; zero means all owners.
	UserID uint
}
