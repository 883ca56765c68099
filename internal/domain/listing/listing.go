package listing

import (
	"fmt"
	"slices"
	"time"

	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/errors"
)

// Listing is a single property advertisement with its moderation state.
type Listing struct {
	id          uint
	slug        string
	title       string
	description string
	images      []string
	address     string
	features    string
	category    string
	listingType vo.ListingType
	featureType vo.FeatureType
	price       int64
	area        *int64
	bedrooms    *int64
	bathrooms   *int64
	location    *Location
	status      vo.ListingStatus
	isPremium   bool
	userID      uint
	createdAt   time.Time
	updatedAt   time.Time
}

// Snapshot is the flat persisted state of a listing.
type Snapshot struct {
	ID          uint
	Slug        string
	Title       string
	Description string
	Images      []string
	Address     string
	Features    string
	Category    string
	ListingType vo.ListingType
	FeatureType vo.FeatureType
	Price       int64
	Area        *int64
	Bedrooms    *int64
	Bathrooms   *int64
	Location    *Location
	Status      vo.ListingStatus
	IsPremium   bool
	UserID      uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewListing validates fields and builds a listing owned by ownerID.
func NewListing(ownerID uint, fields Fields, status vo.ListingStatus) (*Listing, error) {
	if ownerID == 0 {
		return nil, errors.NewValidationError("Validation failed: userId", "userId is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid initial status: %q", status)
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	l := &Listing{
		status:    status,
		userID:    ownerID,
		createdAt: now,
		updatedAt: now,
	}
	l.assign(&fields)
	return l, nil
}

// ReconstructListing rebuilds a listing from storage without validation;
// legacy rows may lack fields that are required on write.
func ReconstructListing(s Snapshot) *Listing {
	images := s.Images
	if images == nil {
		images = []string{}
	}
	return &Listing{
		id:          s.ID,
		slug:        s.Slug,
		title:       s.Title,
		description: s.Description,
		images:      images,
		address:     s.Address,
		features:    s.Features,
		category:    s.Category,
		listingType: s.ListingType,
		featureType: s.FeatureType,
		price:       s.Price,
		area:        s.Area,
		bedrooms:    s.Bedrooms,
		bathrooms:   s.Bathrooms,
		location:    s.Location,
		status:      s.Status,
		isPremium:   s.IsPremium,
		userID:      s.UserID,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

// Snapshot exports the current state for persistence.
func (l *Listing) Snapshot() Snapshot {
	return Snapshot{
		ID:          l.id,
		Slug:        l.slug,
		Title:       l.title,
		Description: l.description,
		Images:      l.Images(),
		Address:     l.address,
		Features:    l.features,
		Category:    l.category,
		ListingType: l.listingType,
		FeatureType: l.featureType,
		Price:       l.price,
		Area:        l.area,
		Bedrooms:    l.bedrooms,
		Bathrooms:   l.bathrooms,
		Location:    l.Location(),
		Status:      l.status,
		IsPremium:   l.isPremium,
		UserID:      l.userID,
		CreatedAt:   l.createdAt,
		UpdatedAt:   l.updatedAt,
	}
}

func (l *Listing) ID() uint                    { return l.id }
func (l *Listing) Slug() string                { return l.slug }
func (l *Listing) Title() string               { return l.title }
func (l *Listing) Description() string         { return l.description }
func (l *Listing) Address() string             { return l.address }
func (l *Listing) Features() string            { return l.features }
func (l *Listing) Category() string            { return l.category }
func (l *Listing) ListingType() vo.ListingType { return l.listingType }
func (l *Listing) FeatureType() vo.FeatureType { return l.featureType }
func (l *Listing) Price() int64                { return l.price }
func (l *Listing) Area() *int64                { return l.area }
func (l *Listing) Bedrooms() *int64            { return l.bedrooms }
func (l *Listing) Bathrooms() *int64           { return l.bathrooms }
func (l *Listing) Status() vo.ListingStatus    { return l.status }
func (l *Listing) IsPremium() bool             { return l.isPremium }
func (l *Listing) UserID() uint                { return l.userID }
func (l *Listing) CreatedAt() time.Time        { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time        { return l.updatedAt }

func (l *Listing) Images() []string {
	return slices.Clone(l.images)
}

func (l *Listing) Location() *Location {
	if l.location == nil {
		return nil
	}
	loc := *l.location
	return &loc
}

// BaseSlug is the collision-free slug candidate derived from the title.
func (l *Listing) BaseSlug() string {
	return Slugify(l.title)
}

func (l *Listing) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("listing ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("listing ID cannot be zero")
	}
	l.id = id
	return nil
}

// SetSlug is called by the repository once a unique slug has been secured.
func (l *Listing) SetSlug(slug string) {
	l.slug = slug
}

// EditResult describes what an edit changed.
type EditResult struct {
	Changed      bool
	TitleChanged bool
	StatusReset  bool
}

// ApplyEdit replaces the editable content with fields. An Approved listing
// whose content changed goes back to Pending unless keepApproved is set;
// any other status is preserved.
func (l *Listing) ApplyEdit(fields Fields, keepApproved bool) (EditResult, error) {
	if err := fields.Validate(); err != nil {
		return EditResult{}, err
	}

	before := l.Snapshot()
	l.assign(&fields)
	after := l.Snapshot()

	result := EditResult{
		Changed:      !sameContent(before, after),
		TitleChanged: before.Title != after.Title,
	}
	if !result.Changed {
		return result, nil
	}

	if l.status.IsApproved() && !keepApproved {
		l.status = vo.StatusPending
		result.StatusReset = true
	}
	l.touch()
	return result, nil
}

// ChangeStatus moves the listing to next. Setting the current status again
// is a no-op.
func (l *Listing) ChangeStatus(next vo.ListingStatus) error {
	if !next.IsValid() {
		return errors.NewInvalidStatusError("invalid listing status", next.String())
	}
	if l.status == next {
		return nil
	}
	if !l.status.CanTransitionTo(next) {
		return errTransition(l.status, next)
	}
	l.status = next
	l.touch()
	return nil
}

func (l *Listing) Cancel() error {
	return l.ChangeStatus(vo.StatusCanceled)
}

func (l *Listing) MarkSold() error {
	return l.ChangeStatus(vo.StatusSold)
}

// SetPremium toggles the premium flag and reports whether it changed.
func (l *Listing) SetPremium(premium bool) bool {
	if l.isPremium == premium {
		return false
	}
	l.isPremium = premium
	l.touch()
	return true
}

func (l *Listing) IsOwnedBy(userID uint) bool {
	return userID != 0 && l.userID == userID
}

func (l *Listing) assign(f *Fields) {
	l.title = f.Title
	l.description = f.Description
	l.images = slices.Clone(f.ImageSrc)
	l.address = f.Address
	l.features = f.Features
	l.category = f.Category
	l.listingType = vo.ListingType(f.ListingType)
	l.featureType = f.ResolvedFeatureType()
	l.price = *f.Price
	l.area = copyInt(f.Area)
	l.bedrooms = copyInt(f.Bedrooms)
	l.bathrooms = copyInt(f.Bathrooms)
	l.location = f.Location.toLocation()
}

func (l *Listing) touch() {
	now := time.Now().UTC()
	if !now.After(l.updatedAt) {
		now = l.updatedAt.Add(time.Microsecond)
	}
	l.updatedAt = now
}

func copyInt(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func equalInt(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalLocation(a, b *Location) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameContent(a, b Snapshot) bool {
	return a.Title == b.Title &&
		a.Description == b.Description &&
		slices.Equal(a.Images, b.Images) &&
		a.Address == b.Address &&
		a.Features == b.Features &&
		a.Category == b.Category &&
		a.ListingType == b.ListingType &&
		a.FeatureType == b.FeatureType &&
		a.Price == b.Price &&
		equalInt(a.Area, b.Area) &&
		equalInt(a.Bedrooms, b.Bedrooms) &&
		equalInt(a.Bathrooms, b.Bathrooms) &&
		equalLocation(a.Location, b.Location)
}
