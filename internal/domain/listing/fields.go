package listing

import (
	"strings"

	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/validation"
)

// Fields is the complete editable content of a listing, as supplied on
// create and on every edit.
type Fields struct {
	Title       string         `json:"title" validate:"required,max=255"`
	Description string         `json:"description" validate:"required"`
	ImageSrc    []string       `json:"imageSrc" validate:"min=1,dive,required"`
	Address     string         `json:"address" validate:"required"`
	Features    string         `json:"features"`
	Category    string         `json:"category" validate:"required"`
	ListingType string         `json:"listingType" validate:"required,oneof=SALE RENT DAILY_RENT"`
	FeatureType string         `json:"featureType" validate:"omitempty,oneof=HOMES EXPERIENCES SERVICES"`
	Location    *LocationInput `json:"location" validate:"required"`
	Price       *int64         `json:"price" validate:"required,gte=0"`
	Area        *int64         `json:"area" validate:"omitempty,gte=0"`
	Bedrooms    *int64         `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int64         `json:"bathrooms" validate:"omitempty,gte=0"`
}

// Normalize trims text fields and drops blank image entries in place.
func (f *Fields) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Address = strings.TrimSpace(f.Address)
	f.Features = strings.TrimSpace(f.Features)
	f.Category = strings.TrimSpace(f.Category)
	f.ListingType = strings.TrimSpace(f.ListingType)
	f.FeatureType = strings.TrimSpace(f.FeatureType)
	if f.ImageSrc != nil {
		f.ImageSrc = compactImages(f.ImageSrc)
	}
	if f.Location != nil {
		f.Location.Label = strings.TrimSpace(f.Location.Label)
	}
}

// Validate normalizes f and reports every missing or invalid field in a
// single validation error.
func (f *Fields) Validate() error {
	f.Normalize()
	return validation.ValidateStruct(f)
}

// ResolvedFeatureType returns the feature type with the default applied.
// Only meaningful after Validate succeeded.
func (f *Fields) ResolvedFeatureType() vo.FeatureType {
	ft, err := vo.NewFeatureType(f.FeatureType)
	if err != nil {
		return vo.DefaultFeatureType
	}
	return ft
}
