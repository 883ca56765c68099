package mappers

import (
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/infrastructure/persistence/models"
)

// ToOwner converts a user row to the owner data shown on listings.
func ToOwner(model *models.UserModel) *listing.Owner {
	if model == nil {
		return nil
	}
	owner := &listing.Owner{ID: model.ID, Name: model.Name, Email: model.Email}
	if model.Image != nil {
		owner.Image = *model.Image
	}
	return owner
}
