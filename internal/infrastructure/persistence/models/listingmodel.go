package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/estately-inc/estately/internal/shared/constants"
)

// ListingModel is the persistence shape of a listing. Timestamps are owned
// by the domain entity, so gorm's automatic time tracking is disabled.
type ListingModel struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex;size:255;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	// ImageSrc holds a JSON array; legacy rows may contain a bare URL
	ImageSrc      datatypes.JSON `gorm:"column:image_src;type:text"`
	Address       string         `gorm:"size:500;not null"`
	Features      string         `gorm:"type:text"`
	Category      string         `gorm:"size:100;not null;index"`
	ListingType   string         `gorm:"size:20;not null;index"`
	FeatureType   string         `gorm:"size:20;not null;default:HOMES;index"`
	Price         int64          `gorm:"not null;index"`
	Area          *int64
	Bedrooms      *int64
	Bathrooms     *int64
	LocationValue *string `gorm:"column:location_value;size:255;index"`
	Latitude      *float64
	Longitude     *float64
	Status        *string   `gorm:"size:20;index"`
	IsPremium     bool      `gorm:"not null;default:false"`
	UserID        uint      `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (ListingModel) TableName() string {
	return constants.TableListings
}
