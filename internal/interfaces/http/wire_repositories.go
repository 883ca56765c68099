package http

import (
	"gorm.io/gorm"

	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/infrastructure/config"
	"github.com/estately-inc/estately/internal/infrastructure/repository"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	listingRepo listing.Repository
	ownerLookup listing.OwnerLookup
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, cfg *config.Config, log logger.Interface) *repositories {
	return &repositories{
		listingRepo: repository.NewListingRepository(db, log).WithSlugAttempts(cfg.Listing.SlugMaxAttempts),
		ownerLookup: repository.NewOwnerLookup(db),
	}
}
