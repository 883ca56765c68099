package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/application/listing/querybuilder"
	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/authorization"
	apperrors "github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/query"
)

var errDatabaseDown = errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

func TestListListingsUseCase_StatusScoping(t *testing.T) {
	tests := []struct {
		name         string
		actor        authorization.Actor
		params       querybuilder.FilterParams
		ownerScoped  bool
		wantStatuses []vo.ListingStatus
		wantUserID   *uint
	}{
		{
			name:         "anonymous cannot request pending",
			actor:        authorization.Anonymous(),
			params:       querybuilder.FilterParams{Status: "Pending"},
			wantStatuses: vo.PublicStatuses(),
		},
		{
			name:         "regular user cannot request showAll",
			actor:        authorization.NewActor(7, authorization.RoleUser),
			params:       querybuilder.FilterParams{ShowAll: true},
			wantStatuses: vo.PublicStatuses(),
		},
		{
			name:         "support sees requested status",
			actor:        authorization.NewActor(2, authorization.RoleSupport),
			params:       querybuilder.FilterParams{Status: "Pending"},
			wantStatuses: []vo.ListingStatus{vo.StatusPending},
		},
		{
			name:         "admin showAll lifts the restriction",
			actor:        authorization.NewActor(1, authorization.RoleAdmin),
			params:       querybuilder.FilterParams{ShowAll: true},
			wantStatuses: nil,
		},
		{
			name:         "owner scoped view includes every status",
			actor:        authorization.NewActor(7, authorization.RoleUser),
			ownerScoped:  true,
			wantStatuses: nil,
			wantUserID:   func() *uint { id := uint(7); return &id }(),
		},
		{
			name:         "owner scoped view honors a status filter",
			actor:        authorization.NewActor(7, authorization.RoleUser),
			params:       querybuilder.FilterParams{Status: "Canceled"},
			ownerScoped:  true,
			wantStatuses: []vo.ListingStatus{vo.StatusCanceled},
			wantUserID:   func() *uint { id := uint(7); return &id }(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got listing.Predicate
			repo := &mockListingRepository{
				FindPageFunc: func(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error) {
					got = p
					return nil, 0, nil
				},
			}

			uc := NewListListingsUseCase(repo, &mockOwnerLookup{}, listing.NewLifecycle(nil), newMockMetrics(), &mockLogger{})
			_, err := uc.Execute(context.Background(), ListListingsQuery{
				Params:      tt.params,
				Actor:       tt.actor,
				OwnerScoped: tt.ownerScoped,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatuses, got.Statuses)
			assert.Equal(t, tt.wantUserID, got.UserID)
		})
	}
}

func TestListListingsUseCase_OwnerScopedRequiresAuthentication(t *testing.T) {
	uc := NewListListingsUseCase(&mockListingRepository{}, nil, listing.NewLifecycle(nil), nil, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListListingsQuery{Actor: authorization.Anonymous(), OwnerScoped: true})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestListListingsUseCase_PaginationWindow(t *testing.T) {
	var items []*listing.Listing
	for i := uint(10); i < 19; i++ {
		items = append(items, storedListing(i, 3, vo.StatusApproved))
	}
	repo := &mockListingRepository{
		FindPageFunc: func(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error) {
			assert.Equal(t, 2, page.Page)
			assert.Equal(t, 9, page.PageSize)
			return items, 20, nil
		},
	}
	owners := &mockOwnerLookup{
		FindOwnersFunc: func(ctx context.Context, ids []uint) (map[uint]*listing.Owner, error) {
			assert.Equal(t, []uint{3}, ids)
			return map[uint]*listing.Owner{3: {ID: 3, Name: "Maria", Email: "maria@example.com"}}, nil
		},
	}

	uc := NewListListingsUseCase(repo, owners, listing.NewLifecycle(nil), newMockMetrics(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ListListingsQuery{Params: querybuilder.FilterParams{Page: "2"}})
	require.NoError(t, err)

	assert.Len(t, result.Items, 9)
	assert.Equal(t, int64(20), result.Total)
	assert.Equal(t, 3, result.Window.TotalPages)
	assert.Equal(t, int64(10), result.Window.FirstIndex)
	assert.Equal(t, int64(18), result.Window.LastIndex)
	assert.Equal(t, 1, owners.calls, "owners are resolved in one batch")
	require.NotNil(t, result.Items[0].Owner)
	assert.Equal(t, "Maria", result.Items[0].Owner.Name)
}

func TestListListingsUseCase_StorageFailureReturnsEmptyPage(t *testing.T) {
	repo := &mockListingRepository{
		FindPageFunc: func(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error) {
			return nil, 0, apperrors.NewStorageUnavailableError(errDatabaseDown)
		},
	}
	metrics := newMockMetrics()
	log := &mockLogger{}

	uc := NewListListingsUseCase(repo, &mockOwnerLookup{}, listing.NewLifecycle(nil), metrics, log)
	result, err := uc.Execute(context.Background(), ListListingsQuery{})
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, query.Window{}, result.Window)
	assert.Equal(t, 1, metrics.fallbacks["list"])
	assert.Len(t, log.errors, 1)
}

func TestListListingsUseCase_OwnerLookupFailureNullsOwners(t *testing.T) {
	repo := &mockListingRepository{
		FindPageFunc: func(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error) {
			return []*listing.Listing{storedListing(1, 3, vo.StatusApproved), storedListing(2, 4, vo.StatusSold)}, 2, nil
		},
	}
	owners := &mockOwnerLookup{
		FindOwnersFunc: func(ctx context.Context, ids []uint) (map[uint]*listing.Owner, error) {
			return nil, errDatabaseDown
		},
	}

	uc := NewListListingsUseCase(repo, owners, listing.NewLifecycle(nil), nil, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListListingsQuery{})
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Nil(t, item.Owner)
	}
}

func TestCountListingsUseCase_Execute(t *testing.T) {
	t.Run("counts with the browse predicate", func(t *testing.T) {
		repo := &mockListingRepository{
			CountFunc: func(ctx context.Context, p listing.Predicate) (int64, error) {
				assert.Equal(t, "Villa", p.Category)
				assert.Equal(t, vo.PublicStatuses(), p.Statuses)
				return 4, nil
			},
		}
		uc := NewCountListingsUseCase(repo, listing.NewLifecycle(nil), nil, &mockLogger{})

		n, err := uc.Execute(context.Background(), CountListingsQuery{Params: querybuilder.FilterParams{Category: "Villa"}})
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("storage failure counts as zero", func(t *testing.T) {
		repo := &mockListingRepository{
			CountFunc: func(ctx context.Context, p listing.Predicate) (int64, error) {
				return 0, errDatabaseDown
			},
		}
		metrics := newMockMetrics()
		uc := NewCountListingsUseCase(repo, listing.NewLifecycle(nil), metrics, &mockLogger{})

		n, err := uc.Execute(context.Background(), CountListingsQuery{})
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, 1, metrics.fallbacks["count"])
	})
}

func TestFeaturedListingsUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		query        FeaturedListingsQuery
		wantCategory string
		wantSize     int
	}{
		{name: "defaults", query: FeaturedListingsQuery{}, wantSize: 12},
		{name: "all categories", query: FeaturedListingsQuery{Category: "all", Limit: 4}, wantSize: 4},
		{name: "single category", query: FeaturedListingsQuery{Category: "Villa", Limit: 6}, wantCategory: "Villa", wantSize: 6},
		{name: "limit capped", query: FeaturedListingsQuery{Limit: 500}, wantSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockListingRepository{
				FindPageFunc: func(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error) {
					assert.Equal(t, []vo.ListingStatus{vo.StatusApproved}, p.Statuses)
					assert.Equal(t, tt.wantCategory, p.Category)
					assert.Equal(t, 1, page.Page)
					assert.Equal(t, tt.wantSize, page.Limit())
					return []*listing.Listing{storedListing(1, 1, vo.StatusApproved)}, 1, nil
				},
			}
			uc := NewFeaturedListingsUseCase(repo, &mockOwnerLookup{}, nil, &mockLogger{})

			items, err := uc.Execute(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Len(t, items, 1)
		})
	}
}

func TestFeaturedListingsUseCase_StorageFailure(t *testing.T) {
	repo := &mockListingRepository{
		FindPageFunc: func(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error) {
			return nil, 0, errDatabaseDown
		},
	}
	metrics := newMockMetrics()
	uc := NewFeaturedListingsUseCase(repo, nil, metrics, &mockLogger{})

	items, err := uc.Execute(context.Background(), FeaturedListingsQuery{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 1, metrics.fallbacks["featured"])
}

func TestGetListingUseCase_Execute(t *testing.T) {
	approved := storedListing(1, 3, vo.StatusApproved)
	pending := storedListing(2, 3, vo.StatusPending)

	repo := &mockListingRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*listing.Listing, error) {
			switch id {
			case 1:
				return approved, nil
			case 2:
				return pending, nil
			case 500:
				return nil, apperrors.NewStorageUnavailableError(errDatabaseDown)
			}
			return nil, nil
		},
		FindBySlugFunc: func(ctx context.Context, slug string) (*listing.Listing, error) {
			if slug == approved.Slug() {
				return approved, nil
			}
			return nil, nil
		},
	}
	owners := &mockOwnerLookup{
		FindOwnersFunc: func(ctx context.Context, ids []uint) (map[uint]*listing.Owner, error) {
			return map[uint]*listing.Owner{3: {ID: 3, Name: "Maria"}}, nil
		},
	}
	uc := NewGetListingUseCase(repo, owners, listing.NewLifecycle(nil), &mockRenderer{}, &mockLogger{})
	ctx := context.Background()

	t.Run("by slug with owner and html", func(t *testing.T) {
		got, err := uc.Execute(ctx, GetListingQuery{Slug: "listing-1"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), got.ID)
		assert.Equal(t, "<p>A home</p>", got.DescriptionHTML)
		require.NotNil(t, got.Owner)
		assert.Equal(t, "Maria", got.Owner.Name)
	})

	t.Run("pending hidden from strangers", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetListingQuery{ID: 2, Actor: authorization.NewActor(9, authorization.RoleUser)})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("pending visible to owner", func(t *testing.T) {
		got, err := uc.Execute(ctx, GetListingQuery{ID: 2, Actor: authorization.NewActor(3, authorization.RoleUser)})
		require.NoError(t, err)
		require.NotNil(t, got.Status)
		assert.Equal(t, "Pending", *got.Status)
	})

	t.Run("pending visible to moderators", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetListingQuery{ID: 2, Actor: authorization.NewActor(5, authorization.RoleModerator)})
		require.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetListingQuery{Slug: "nope"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetListingQuery{ID: 500})
		assert.True(t, apperrors.IsStorageUnavailableError(err))
	})

	t.Run("no id or slug", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetListingQuery{})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestListingStatsUseCase_Execute(t *testing.T) {
	admin := authorization.NewActor(1, authorization.RoleAdmin)

	t.Run("computes and caches on miss", func(t *testing.T) {
		repo := &mockListingRepository{
			CountByStatusFunc: func(ctx context.Context) (map[vo.ListingStatus]int64, error) {
				return map[vo.ListingStatus]int64{
					vo.StatusPending:  3,
					vo.StatusApproved: 10,
					"":                2,
				}, nil
			},
		}
		cache := &mockStatsCache{}
		metrics := newMockMetrics()
		uc := NewListingStatsUseCase(repo, listing.NewLifecycle(nil), cache, metrics, &mockLogger{})

		stats, err := uc.Execute(context.Background(), ListingStatsQuery{Actor: admin})
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Pending)
		assert.Equal(t, int64(15), stats.Total)
		assert.Equal(t, int64(2), stats.ByStatus[dto.UnknownStatusKey])
		assert.Equal(t, int64(0), stats.ByStatus["Sold"])
		assert.Equal(t, 1, cache.sets)
		assert.Equal(t, 1, metrics.misses)
	})

	t.Run("cache hit skips storage", func(t *testing.T) {
		repo := &mockListingRepository{
			CountByStatusFunc: func(ctx context.Context) (map[vo.ListingStatus]int64, error) {
				t.Fatal("storage must not be queried on a cache hit")
				return nil, nil
			},
		}
		cached := &dto.ListingStatsDTO{ByStatus: map[string]int64{"Pending": 8}, Pending: 8, Total: 8}
		cache := &mockStatsCache{
			GetFunc: func(ctx context.Context) (*dto.ListingStatsDTO, error) { return cached, nil },
		}
		metrics := newMockMetrics()
		uc := NewListingStatsUseCase(repo, listing.NewLifecycle(nil), cache, metrics, &mockLogger{})

		stats, err := uc.Execute(context.Background(), ListingStatsQuery{Actor: admin})
		require.NoError(t, err)
		assert.Same(t, cached, stats)
		assert.Equal(t, 1, metrics.hits)
	})

	t.Run("storage failure returns zeros", func(t *testing.T) {
		repo := &mockListingRepository{
			CountByStatusFunc: func(ctx context.Context) (map[vo.ListingStatus]int64, error) {
				return nil, errDatabaseDown
			},
		}
		metrics := newMockMetrics()
		uc := NewListingStatsUseCase(repo, listing.NewLifecycle(nil), nil, metrics, &mockLogger{})

		stats, err := uc.Execute(context.Background(), ListingStatsQuery{Actor: admin})
		require.NoError(t, err)
		assert.Zero(t, stats.Total)
		assert.Zero(t, stats.Pending)
		assert.Equal(t, 1, metrics.fallbacks["stats"])
	})

	t.Run("regular users are forbidden", func(t *testing.T) {
		uc := NewListingStatsUseCase(&mockListingRepository{}, listing.NewLifecycle(nil), nil, nil, &mockLogger{})

		_, err := uc.Execute(context.Background(), ListingStatsQuery{Actor: authorization.NewActor(4, authorization.RoleUser)})
		assert.True(t, apperrors.IsForbiddenError(err))
	})
}
