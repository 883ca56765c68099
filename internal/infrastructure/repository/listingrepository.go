package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"gorm.io/gorm"

	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/infrastructure/persistence/mappers"
	"github.com/estately-inc/estately/internal/infrastructure/persistence/models"
	db "github.com/estately-inc/estately/internal/shared/db"
	"github.com/estately-inc/estately/internal/shared/errors"
	"github.com/estately-inc/estately/internal/shared/logger"
	"github.com/estately-inc/estately/internal/shared/query"
)

const defaultSlugAttempts = 5

// likeEscape is portable across mysql, postgres and sqlite, unlike backslash.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

type ListingRepository struct {
	db           *gorm.DB
	txm          *db.TransactionManager
	mapper       mappers.ListingMapper
	slugAttempts int
	slugSuffix   func() int
	logger       logger.Interface
}

func NewListingRepository(gormDB *gorm.DB, logger logger.Interface) *ListingRepository {
	return &ListingRepository{
		db:           gormDB,
		txm:          db.NewTransactionManager(gormDB),
		mapper:       mappers.NewListingMapper(),
		slugAttempts: defaultSlugAttempts,
		slugSuffix:   randomSlugSuffix,
		logger:       logger,
	}
}

// WithSlugAttempts bounds how many slug candidates are tried per write.
func (r *ListingRepository) WithSlugAttempts(n int) *ListingRepository {
	if n > 0 {
		r.slugAttempts = n
	}
	return r
}

// WithSlugSuffix replaces the random collision suffix source.
func (r *ListingRepository) WithSlugSuffix(fn func() int) *ListingRepository {
	if fn != nil {
		r.slugSuffix = fn
	}
	return r
}

func randomSlugSuffix() int {
	lo, hi := listing.SlugSuffixRange()
	return lo + rand.IntN(hi-lo+1)
}

// FindPage reads the total and the requested page inside one transaction,
// newest first.
func (r *ListingRepository) FindPage(ctx context.Context, p listing.Predicate, page query.PageFilter) ([]*listing.Listing, int64, error) {
	var (
		total int64
		rows  []models.ListingModel
	)

	err := r.txm.RunInSnapshot(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		if err := applyPredicate(tx.Model(&models.ListingModel{}), p).Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count listings: %w", err)
		}
		if total == 0 {
			return nil
		}

		return applyPredicate(tx.Model(&models.ListingModel{}), p).
			Order("created_at DESC").
			Order("id DESC").
			Limit(page.Limit()).
			Offset(page.Offset()).
			Find(&rows).Error
	})
	if err != nil {
		return nil, 0, errors.NewStorageUnavailableError(fmt.Errorf("failed to list listings: %w", err))
	}

	return r.mapper.ToDomainList(rows), total, nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id uint) (*listing.Listing, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ListingRepository) FindBySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *ListingRepository) findOne(ctx context.Context, cond string, arg any) (*listing.Listing, error) {
	var model models.ListingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(cond, arg).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewStorageUnavailableError(fmt.Errorf("failed to find listing: %w", err))
	}
	return r.mapper.ToDomain(&model), nil
}

// Create inserts the listing under a unique slug and assigns its ID.
func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(l)

	slug, err := r.writeWithSlug(tx, l.BaseSlug(), 0, func(candidate string) error {
		model.Slug = candidate
		return tx.Create(model).Error
	})
	if err != nil {
		return err
	}

	l.SetSlug(slug)
	return l.SetID(model.ID)
}

// Update persists every column of the listing. The slug is recomputed from
// the title only when regenerateSlug is set.
func (r *ListingRepository) Update(ctx context.Context, l *listing.Listing, regenerateSlug bool) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(l)

	save := func(candidate string) error {
		model.Slug = candidate
		return tx.Model(&models.ListingModel{}).
			Where("id = ?", model.ID).
			Select("*").
			Omit("id", "user_id", "created_at").
			Updates(model).Error
	}

	base := l.BaseSlug()
	if !regenerateSlug || base == l.Slug() {
		if err := save(l.Slug()); err != nil {
			return errors.NewStorageUnavailableError(fmt.Errorf("failed to update listing: %w", err))
		}
		return nil
	}

	slug, err := r.writeWithSlug(tx, base, model.ID, save)
	if err != nil {
		return err
	}
	l.SetSlug(slug)
	return nil
}

// writeWithSlug runs write with successive slug candidates until one does
// not hit the unique index. The first candidate is the bare base when no
// other row holds it.
func (r *ListingRepository) writeWithSlug(tx *gorm.DB, base string, selfID uint, write func(slug string) error) (string, error) {
	candidate := base
	taken, err := r.slugTaken(tx, base, selfID)
	if err != nil {
		return "", errors.NewStorageUnavailableError(err)
	}
	if taken {
		candidate = listing.SuffixedSlug(base, r.slugSuffix())
	}

	for attempt := 1; ; attempt++ {
		err := write(candidate)
		if err == nil {
			return candidate, nil
		}
		if !isUniqueViolation(err) {
			return "", errors.NewStorageUnavailableError(fmt.Errorf("failed to save listing: %w", err))
		}
		if attempt >= r.slugAttempts {
			r.logger.Warnw("slug candidates exhausted", "base", base, "attempts", attempt)
			return "", errors.NewConflictError("could not allocate a unique slug, please retry", base)
		}
		r.logger.Debugw("slug collision, retrying", "candidate", candidate, "attempt", attempt)
		candidate = listing.SuffixedSlug(base, r.slugSuffix())
	}
}

func (r *ListingRepository) slugTaken(tx *gorm.DB, slug string, selfID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.ListingModel{}).Where("slug = ?", slug)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	return stderrors.Is(err, gorm.ErrDuplicatedKey) || errors.IsDuplicateError(err)
}

// Delete removes the listing; a missing row is not an error.
func (r *ListingRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.ListingModel{}, id).Error; err != nil {
		return errors.NewStorageUnavailableError(fmt.Errorf("failed to delete listing: %w", err))
	}
	return nil
}

func (r *ListingRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("user_id = ?", userID).Delete(&models.ListingModel{})
	if result.Error != nil {
		return 0, errors.NewStorageUnavailableError(fmt.Errorf("failed to delete user listings: %w", result.Error))
	}
	return result.RowsAffected, nil
}

func (r *ListingRepository) Count(ctx context.Context, p listing.Predicate) (int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := applyPredicate(tx.Model(&models.ListingModel{}), p).Count(&total).Error; err != nil {
		return 0, errors.NewStorageUnavailableError(fmt.Errorf("failed to count listings: %w", err))
	}
	return total, nil
}

func (r *ListingRepository) CountByStatus(ctx context.Context) (map[vo.ListingStatus]int64, error) {
	var rows []struct {
		Status *string
		Total  int64
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ListingModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.NewStorageUnavailableError(fmt.Errorf("failed to count listings by status: %w", err))
	}

	counts := make(map[vo.ListingStatus]int64, len(rows))
	for _, row := range rows {
		var status vo.ListingStatus
		if row.Status != nil {
			status = vo.ListingStatus(*row.Status)
		}
		counts[status] += row.Total
	}
	return counts, nil
}

func applyPredicate(q *gorm.DB, p listing.Predicate) *gorm.DB {
	if p.TitleContains != "" {
		q = whereTitleContains(q, p.TitleContains)
	}
	if p.Category != "" {
		q = q.Where("category = ?", p.Category)
	}
	if p.LocationValue != "" {
		q = q.Where("location_value = ?", p.LocationValue)
	}
	if p.ListingType != nil {
		q = q.Where("listing_type = ?", p.ListingType.String())
	}
	if p.FeatureType != nil {
		q = q.Where("feature_type = ?", p.FeatureType.String())
	}
	if p.MinPrice != nil {
		q = q.Where("price >= ?", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		q = q.Where("price <= ?", *p.MaxPrice)
	}
	q = applyCount(q, "bedrooms", p.Bedrooms)
	q = applyCount(q, "bathrooms", p.Bathrooms)
	if len(p.Statuses) > 0 {
		statuses := make([]string, 0, len(p.Statuses))
		for _, s := range p.Statuses {
			statuses = append(statuses, s.String())
		}
		q = q.Where("status IN ?", statuses)
	}
	if p.UserID != nil {
		q = q.Where("user_id = ?", *p.UserID)
	}
	return q
}

// whereTitleContains matches case-insensitively. Postgres uses ILIKE and
// mysql relies on the table's utf8mb4_unicode_ci collation; both fold
// non-ASCII letters. SQLite's LOWER folds ASCII only.
func whereTitleContains(q *gorm.DB, term string) *gorm.DB {
	escape := " ESCAPE '" + likeEscape + "'"
	switch q.Dialector.Name() {
	case "postgres":
		return q.Where("title ILIKE ?"+escape, "%"+likeEscaper.Replace(term)+"%")
	case "mysql":
		return q.Where("title LIKE ?"+escape, "%"+likeEscaper.Replace(term)+"%")
	default:
		return q.Where("LOWER(title) LIKE ?"+escape, "%"+likeEscaper.Replace(strings.ToLower(term))+"%")
	}
}

func applyCount(q *gorm.DB, column string, f *listing.CountFilter) *gorm.DB {
	if f == nil {
		return q
	}
	if f.AtLeast {
		return q.Where(column+" >= ?", f.Value)
	}
	return q.Where(column+" = ?", f.Value)
}
