package models

import (
	"time"

	"github.com/estately-inc/estately/internal/shared/constants"
)

// UserModel maps the users table owned by the account service. Listings
// only read it to show who published a listing.
type UserModel struct {
	ID        uint    `gorm:"primarykey"`
	Email     string  `gorm:"uniqueIndex;not null;size:255"`
	Name      string  `gorm:"not null;size:100"`
	Image     *string `gorm:"size:500"`
	Role      string  `gorm:"not null;default:USER;size:20"`
	Status    string  `gorm:"not null;default:Active;size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
