package valueobjects

import "fmt"

// ListingStatus is the moderation state of a listing. The zero value stands
// for legacy rows stored without a status.
type ListingStatus string

const (
	StatusPending  ListingStatus = "Pending"
	StatusApproved ListingStatus = "Approved"
	StatusCanceled ListingStatus = "Canceled"
	StatusSold     ListingStatus = "Sold"
)

var validListingStatuses = map[ListingStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusCanceled: true,
	StatusSold:     true,
}

// statuses an explicit status update may target; Sold has its own action
var settableListingStatuses = map[ListingStatus]bool{
	StatusApproved: true,
	StatusPending:  true,
	StatusCanceled: true,
}

var listingStatusTransitions = map[ListingStatus][]ListingStatus{
	StatusPending: {
		StatusApproved,
		StatusCanceled,
		StatusSold,
	},
	StatusApproved: {
		StatusPending,
		StatusCanceled,
		StatusSold,
	},
	StatusCanceled: {
		StatusApproved,
		StatusPending,
	},
	StatusSold: {
		StatusApproved,
		StatusPending,
		StatusCanceled,
	},
}

func (s ListingStatus) String() string {
	return string(s)
}

func (s ListingStatus) IsValid() bool {
	return validListingStatuses[s]
}

// IsUnset reports a legacy row without status.
func (s ListingStatus) IsUnset() bool {
	return s == ""
}

// IsSettable reports whether s may be assigned by an explicit status update.
func (s ListingStatus) IsSettable() bool {
	return settableListingStatuses[s]
}

// IsPubliclyVisible reports whether anonymous browsing shows the listing.
func (s ListingStatus) IsPubliclyVisible() bool {
	return s == StatusApproved || s == StatusSold
}

func (s ListingStatus) CanTransitionTo(next ListingStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s.IsUnset() {
		return true
	}
	for _, allowed := range listingStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ListingStatus) IsPending() bool {
	return s == StatusPending
}

func (s ListingStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s ListingStatus) IsCanceled() bool {
	return s == StatusCanceled
}

func (s ListingStatus) IsSold() bool {
	return s == StatusSold
}

func NewListingStatus(s string) (ListingStatus, error) {
	status := ListingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid listing status: %s", s)
	}
	return status, nil
}

// NewSettableStatus parses the value of an explicit status update.
func NewSettableStatus(s string) (ListingStatus, error) {
	status := ListingStatus(s)
	if !status.IsSettable() {
		return "", fmt.Errorf("status must be one of Approved, Pending, Canceled: %q", s)
	}
	return status, nil
}

// PublicStatuses is the default visibility set for browse queries.
func PublicStatuses() []ListingStatus {
	return []ListingStatus{StatusApproved, StatusSold}
}

// AllStatuses returns every valid status in display order.
func AllStatuses() []ListingStatus {
	return []ListingStatus{StatusPending, StatusApproved, StatusCanceled, StatusSold}
}
