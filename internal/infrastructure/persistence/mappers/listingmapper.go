package mappers

import (
	"gorm.io/datatypes"

	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/infrastructure/persistence/models"
)

// ListingMapper handles the conversion between Listing domain entities and persistence models.
type ListingMapper interface {
	ToModel(l *listing.Listing) *models.ListingModel
	ToDomain(model *models.ListingModel) *listing.Listing
	ToDomainList(list []models.ListingModel) []*listing.Listing
}

type ListingMapperImpl struct{}

func NewListingMapper() ListingMapper {
	return &ListingMapperImpl{}
}

func (m *ListingMapperImpl) ToModel(l *listing.Listing) *models.ListingModel {
	s := l.Snapshot()
	model := &models.ListingModel{
		ID:          s.ID,
		Slug:        s.Slug,
		Title:       s.Title,
		Description: s.Description,
		ImageSrc:    datatypes.JSON(listing.EncodeImageSrc(s.Images)),
		Address:     s.Address,
		Features:    s.Features,
		Category:    s.Category,
		ListingType: s.ListingType.String(),
		FeatureType: s.FeatureType.String(),
		Price:       s.Price,
		Area:        s.Area,
		Bedrooms:    s.Bedrooms,
		Bathrooms:   s.Bathrooms,
		IsPremium:   s.IsPremium,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}

	if s.Location != nil {
		label, lat, lng := s.Location.Label, s.Location.Latitude, s.Location.Longitude
		model.LocationValue = &label
		model.Latitude = &lat
		model.Longitude = &lng
	}

	if !s.Status.IsUnset() {
		status := s.Status.String()
		model.Status = &status
	}

	return model
}

// ToDomain never fails: legacy rows with malformed images or missing
// columns are read as best as possible.
func (m *ListingMapperImpl) ToDomain(model *models.ListingModel) *listing.Listing {
	if model == nil {
		return nil
	}

	s := listing.Snapshot{
		ID:          model.ID,
		Slug:        model.Slug,
		Title:       model.Title,
		Description: model.Description,
		Images:      listing.ParseImageSrc(model.ImageSrc),
		Address:     model.Address,
		Features:    model.Features,
		Category:    model.Category,
		ListingType: vo.ListingType(model.ListingType),
		FeatureType: vo.FeatureType(model.FeatureType),
		Price:       model.Price,
		Area:        model.Area,
		Bedrooms:    model.Bedrooms,
		Bathrooms:   model.Bathrooms,
		Location:    listing.NewLocation(model.LocationValue, model.Latitude, model.Longitude),
		IsPremium:   model.IsPremium,
		UserID:      model.UserID,
		CreatedAt:   model.CreatedAt.UTC(),
		UpdatedAt:   model.UpdatedAt.UTC(),
	}
	if s.FeatureType == "" {
		s.FeatureType = vo.DefaultFeatureType
	}
	if model.Status != nil {
		s.Status = vo.ListingStatus(*model.Status)
	}

	return listing.ReconstructListing(s)
}

func (m *ListingMapperImpl) ToDomainList(list []models.ListingModel) []*listing.Listing {
	result := make([]*listing.Listing, 0, len(list))
	for i := range list {
		result = append(result, m.ToDomain(&list[i]))
	}
	return result
}
