package valueobjects

import "fmt"

// ListingType is the commercial arrangement of a listing.
type ListingType string

const (
	ListingTypeSale      ListingType = "SALE"
	ListingTypeRent      ListingType = "RENT"
	ListingTypeDailyRent ListingType = "DAILY_RENT"
)

var validListingTypes = map[ListingType]bool{
	ListingTypeSale:      true,
	ListingTypeRent:      true,
	ListingTypeDailyRent: true,
}

func (t ListingType) String() string {
	return string(t)
}

func (t ListingType) IsValid() bool {
	return validListingTypes[t]
}

func NewListingType(s string) (ListingType, error) {
	t := ListingType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid listing type: %s", s)
	}
	return t, nil
}
