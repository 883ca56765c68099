package http

import (
	"github.com/estately-inc/estately/internal/interfaces/http/handlers"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	listingHandler *handlers.ListingHandler
	healthHandler  *handlers.HealthHandler
}

func newHandlers(ucs *allUseCases, checks map[string]handlers.HealthCheck, log logger.Interface) *allHandlers {
	return &allHandlers{
		listingHandler: handlers.NewListingHandler(handlers.ListingHandlerDeps{
			List:        ucs.listListingsUC,
			Count:       ucs.countListingsUC,
			Featured:    ucs.featuredListingsUC,
			Get:         ucs.getListingUC,
			Create:      ucs.createListingUC,
			Update:      ucs.updateListingUC,
			Cancel:      ucs.cancelListingUC,
			MarkSold:    ucs.markSoldUC,
			Delete:      ucs.deleteListingUC,
			Moderate:    ucs.moderateListingUC,
			SetStatus:   ucs.setStatusUC,
			SetPremium:  ucs.setPremiumUC,
			Stats:       ucs.listingStatsUC,
			DeleteOwned: ucs.deleteUserListingsUC,
		}, log.Named("listing")),
		healthHandler: handlers.NewHealthHandler(checks, log),
	}
}
