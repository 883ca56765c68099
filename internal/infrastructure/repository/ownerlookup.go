package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/infrastructure/persistence/mappers"
	"github.com/estately-inc/estately/internal/infrastructure/persistence/models"
	db "github.com/estately-inc/estately/internal/shared/db"
)

// OwnerLookup resolves listing owners from the users table.
type OwnerLookup struct {
	db *gorm.DB
}

func NewOwnerLookup(db *gorm.DB) *OwnerLookup {
	return &OwnerLookup{db: db}
}

// FindOwners loads every requested user in a single query.
func (o *OwnerLookup) FindOwners(ctx context.Context, ids []uint) (map[uint]*listing.Owner, error) {
	owners := make(map[uint]*listing.Owner, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}

	var users []models.UserModel
	tx := db.GetTxFromContext(ctx, o.db)
	if err := tx.Select("id", "name", "email", "image").
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load listing owners: %w", err)
	}

	for i := range users {
		owners[users[i].ID] = mappers.ToOwner(&users[i])
	}
	return owners, nil
}
