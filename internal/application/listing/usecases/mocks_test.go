package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/logger"
	"github.com/estately-inc/estately/internal/shared/query"
)

type mockListingRepository struct {
	FindPageFunc       func(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*listing.Listing, error)
	FindBySlugFunc     func(ctx context.Context, slug string) (*listing.Listing, error)
	CreateFunc         func(ctx context.Context, l *listing.Listing) error
	UpdateFunc         func(ctx context.Context, l *listing.Listing, regenerateSlug bool) error
	DeleteFunc         func(ctx context.Context, id uint) error
	DeleteByUserIDFunc func(ctx context.Context, userID uint) (int64, error)
	CountFunc          func(ctx context.Context, p listing.Predicate) (int64, error)
	CountByStatusFunc  func(ctx context.Context) (map[vo.ListingStatus]int64, error)

	updateCalls int
}

func (m *mockListingRepository) FindPage(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error) {
	if m.FindPageFunc != nil {
		return m.FindPageFunc(ctx, p, page)
	}
	return nil, 0, nil
}

func (m *mockListingRepository) FindByID(ctx context.Context, id uint) (*listing.Listing, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockListingRepository) FindBySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	return nil
}

func (m *mockListingRepository) Update(ctx context.Context, l *listing.Listing, regenerateSlug bool) error {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l, regenerateSlug)
	}
	return nil
}

func (m *mockListingRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockListingRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockListingRepository) Count(ctx context.Context, p listing.Predicate) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, p)
	}
	return 0, nil
}

func (m *mockListingRepository) CountByStatus(ctx context.Context) (map[vo.ListingStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
}

type mockOwnerLookup struct {
	FindOwnersFunc func(ctx context.Context, ids []uint) (map[uint]*listing.Owner, error)
	calls          int
}

func (m *mockOwnerLookup) FindOwners(ctx context.Context, ids []uint) (map[uint]*listing.Owner, error) {
	m.calls++
	if m.FindOwnersFunc != nil {
		return m.FindOwnersFunc(ctx, ids)
	}
	return map[uint]*listing.Owner{}, nil
}

type mockStatsCache struct {
	GetFunc        func(ctx context.Context) (*dto.ListingStatsDTO, error)
	SetFunc        func(ctx context.Context, stats *dto.ListingStatsDTO) error
	InvalidateFunc func(ctx context.Context) error

	sets          int
	invalidations int
}

func (m *mockStatsCache) Get(ctx context.Context) (*dto.ListingStatsDTO, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsCache) Set(ctx context.Context, stats *dto.ListingStatsDTO) error {
	m.sets++
	if m.SetFunc != nil {
		return m.SetFunc(ctx, stats)
	}
	return nil
}

func (m *mockStatsCache) Invalidate(ctx context.Context) error {
	m.invalidations++
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

type mockMetrics struct {
	mu        sync.Mutex
	fallbacks map[string]int
	writes    map[string]int
	hits      int
	misses    int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{fallbacks: map[string]int{}, writes: map[string]int{}}
}

func (m *mockMetrics) RecordReadFallback(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks[operation]++
}

func (m *mockMetrics) RecordWrite(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.writes[operation+":"+outcome]++
}

func (m *mockMetrics) RecordStatsCache(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}

type mockRenderer struct {
	RenderFunc func(source string) (string, error)
}

func (m *mockRenderer) RenderDescription(source string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(source)
	}
	return "<p>" + source + "</p>", nil
}

// mockLogger records the messages logged at each level.
type mockLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
}

func (m *mockLogger) Debug(msg string, args ...any)        {}
func (m *mockLogger) Info(msg string, args ...any)         {}
func (m *mockLogger) Warn(msg string, args ...any)         { m.Warnw(msg) }
func (m *mockLogger) Error(msg string, args ...any)        { m.Errorw(msg) }
func (m *mockLogger) Fatal(msg string, args ...any)        {}
func (m *mockLogger) With(args ...any) logger.Interface    { return m }
func (m *mockLogger) Named(name string) logger.Interface   { return m }
func (m *mockLogger) Debugw(msg string, kv ...interface{}) {}
func (m *mockLogger) Infow(msg string, kv ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, kv ...interface{}) {}

func (m *mockLogger) Warnw(msg string, kv ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) Errorw(msg string, kv ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func validFields() listing.Fields {
	return listing.Fields{
		Title:       "Sunny Villa with Pool",
		Description: "Four bedrooms, **sea view**.",
		ImageSrc:    []string{"https://img.example.com/1.jpg"},
		Address:     "12 Coast Road",
		Category:    "Villa",
		ListingType: "SALE",
		Location: &listing.LocationInput{
			Label:     "Limassol",
			Latitude:  float64Ptr(34.7071),
			Longitude: float64Ptr(33.0226),
		},
		Price:    int64Ptr(150000),
		Bedrooms: int64Ptr(5),
	}
}

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// storedListing builds a persisted listing as the repository would return it.
func storedListing(id, ownerID uint, status vo.ListingStatus) *listing.Listing {
	return listing.ReconstructListing(listing.Snapshot{
		ID:          id,
		Slug:        fmt.Sprintf("listing-%d", id),
		Title:       fmt.Sprintf("Listing %d", id),
		Description: "A home",
		Images:      []string{"https://img.example.com/a.jpg"},
		Address:     "1 Main Street",
		Category:    "Villa",
		ListingType: vo.ListingTypeSale,
		FeatureType: vo.FeatureTypeHomes,
		Price:       100000,
		Location:    &listing.Location{Label: "Limassol", Latitude: 34.7, Longitude: 33.0},
		Status:      status,
		UserID:      ownerID,
		CreatedAt:   baseTime.Add(time.Duration(id) * time.Hour),
		UpdatedAt:   baseTime.Add(time.Duration(id) * time.Hour),
	})
}
