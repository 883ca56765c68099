package http

import (
	"github.com/estately-inc/estately/internal/application/listing/usecases"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Reads
	listListingsUC     *usecases.ListListingsUseCase
	countListingsUC    *usecases.CountListingsUseCase
	featuredListingsUC *usecases.FeaturedListingsUseCase
	getListingUC       *usecases.GetListingUseCase
	listingStatsUC     *usecases.ListingStatsUseCase

	// Writes
	createListingUC      *usecases.CreateListingUseCase
	updateListingUC      *usecases.UpdateListingUseCase
	cancelListingUC      *usecases.CancelListingUseCase
	markSoldUC           *usecases.MarkSoldUseCase
	deleteListingUC      *usecases.DeleteListingUseCase
	deleteUserListingsUC *usecases.DeleteUserListingsUseCase

	// Moderation
	moderateListingUC *usecases.ModerateListingUseCase
	setStatusUC       *usecases.SetStatusUseCase
	setPremiumUC      *usecases.SetPremiumUseCase
}

// useCaseDeps collects the collaborators shared by the listing use cases.
type useCaseDeps struct {
	repos     *repositories
	lifecycle *listing.Lifecycle
	cache     usecases.StatsCache
	metrics   usecases.Metrics
	renderer  usecases.DescriptionRenderer
}

func newUseCases(d useCaseDeps, log logger.Interface) *allUseCases {
	repo := d.repos.listingRepo
	owners := d.repos.ownerLookup

	return &allUseCases{
		listListingsUC:     usecases.NewListListingsUseCase(repo, owners, d.lifecycle, d.metrics, log),
		countListingsUC:    usecases.NewCountListingsUseCase(repo, d.lifecycle, d.metrics, log),
		featuredListingsUC: usecases.NewFeaturedListingsUseCase(repo, owners, d.metrics, log),
		getListingUC:       usecases.NewGetListingUseCase(repo, owners, d.lifecycle, d.renderer, log),
		listingStatsUC:     usecases.NewListingStatsUseCase(repo, d.lifecycle, d.cache, d.metrics, log),

		createListingUC:      usecases.NewCreateListingUseCase(repo, d.lifecycle, d.cache, d.metrics, log),
		updateListingUC:      usecases.NewUpdateListingUseCase(repo, d.lifecycle, d.cache, d.metrics, log),
		cancelListingUC:      usecases.NewCancelListingUseCase(repo, d.lifecycle, d.cache, d.metrics, log),
		markSoldUC:           usecases.NewMarkSoldUseCase(repo, d.lifecycle, d.cache, d.metrics, log),
		deleteListingUC:      usecases.NewDeleteListingUseCase(repo, d.lifecycle, d.cache, d.metrics, log),
		deleteUserListingsUC: usecases.NewDeleteUserListingsUseCase(repo, d.lifecycle, d.cache, d.metrics, log),

		moderateListingUC: usecases.NewModerateListingUseCase(repo, d.lifecycle, d.cache, d.metrics, log),
		setStatusUC:       usecases.NewSetStatusUseCase(repo, d.lifecycle, d.cache, d.metrics, log),
		setPremiumUC:      usecases.NewSetPremiumUseCase(repo, d.lifecycle, d.cache, d.metrics, log),
	}
}
