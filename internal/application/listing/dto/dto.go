package dto

import (
	"time"

	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
)

// UnknownStatusKey groups legacy rows without a status in stats output.
const UnknownStatusKey = "Unknown"

type OwnerDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type LocationDTO struct {
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ListingDTO is the read model of a listing. Owner is null when the owner
// could not be resolved; Status is null for legacy rows.
type ListingDTO struct {
	ID              uint         `json:"id"`
	Slug            string       `json:"slug"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DescriptionHTML string       `json:"descriptionHtml,omitempty"`
	ImageSrc        []string     `json:"imageSrc"`
	Address         string       `json:"address"`
	Features        string       `json:"features"`
	Category        string       `json:"category"`
	ListingType     string       `json:"listingType"`
	FeatureType     string       `json:"featureType"`
	Price           int64        `json:"price"`
	Area            *int64       `json:"area"`
	Bedrooms        *int64       `json:"bedrooms"`
	Bathrooms       *int64       `json:"bathrooms"`
	Location        *LocationDTO `json:"location"`
	Status          *string      `json:"status"`
	IsPremium       bool         `json:"isPremium"`
	UserID          uint         `json:"userId"`
	Owner           *OwnerDTO    `json:"owner"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// ListingStatsDTO is the admin dashboard breakdown.
type ListingStatsDTO struct {
	ByStatus map[string]int64 `json:"by_status"`
	Pending  int64            `json:"pending"`
	Total    int64            `json:"total"`
}

func ToOwnerDTO(o *listing.Owner) *OwnerDTO {
	if o == nil {
		return nil
	}
	return &OwnerDTO{ID: o.ID, Name: o.Name, Email: o.Email, Image: o.Image}
}

func ToListingDTO(l *listing.Listing, owner *listing.Owner) *ListingDTO {
	if l == nil {
		return nil
	}

	d := &ListingDTO{
		ID:          l.ID(),
		Slug:        l.Slug(),
		Title:       l.Title(),
		Description: l.Description(),
		ImageSrc:    l.Images(),
		Address:     l.Address(),
		Features:    l.Features(),
		Category:    l.Category(),
		ListingType: l.ListingType().String(),
		FeatureType: l.FeatureType().String(),
		Price:       l.Price(),
		Area:        l.Area(),
		Bedrooms:    l.Bedrooms(),
		Bathrooms:   l.Bathrooms(),
		IsPremium:   l.IsPremium(),
		UserID:      l.UserID(),
		Owner:       ToOwnerDTO(owner),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
	if loc := l.Location(); loc != nil {
		d.Location = &LocationDTO{Label: loc.Label, Latitude: loc.Latitude, Longitude: loc.Longitude}
	}
	if status := l.Status(); !status.IsUnset() {
		s := status.String()
		d.Status = &s
	}
	return d
}

// ToListingDTOs maps a page of listings; owners may be nil, in which case
// every owner is null.
func ToListingDTOs(listings []*listing.Listing, owners map[uint]*listing.Owner) []*ListingDTO {
	items := make([]*ListingDTO, 0, len(listings))
	for _, l := range listings {
		items = append(items, ToListingDTO(l, owners[l.UserID()]))
	}
	return items
}

// ToListingStatsDTO folds a status breakdown into the dashboard shape.
func ToListingStatsDTO(counts map[vo.ListingStatus]int64) *ListingStatsDTO {
	stats := &ListingStatsDTO{ByStatus: make(map[string]int64, len(vo.AllStatuses())+1)}
	for _, s := range vo.AllStatuses() {
		stats.ByStatus[s.String()] = 0
	}
	for status, n := range counts {
		key := status.String()
		if status.IsUnset() {
			key = UnknownStatusKey
		}
		stats.ByStatus[key] += n
		stats.Total += n
	}
	stats.Pending = stats.ByStatus[vo.StatusPending.String()]
	return stats
}
