package querybuilder

import (
	"strconv"
	"strings"

	"github.com/estately-inc/estately/internal/domain/listing"
	vo "github.com/estately-inc/estately/internal/domain/listing/valueobjects"
	"github.com/estately-inc/estately/internal/shared/query"
)

// atLeastSentinel is the bedrooms/bathrooms value meaning "five or more".
const atLeastSentinel = "5+"

// Build normalizes params into a predicate and a page window.
func Build(params FilterParams) (listing.Predicate, query.PageFilter) {
	return Predicate(params), Page(params.Page, params.PageSize)
}

// Predicate normalizes the filter part of params.
func Predicate(params FilterParams) listing.Predicate {
	var p listing.Predicate

	p.TitleContains = strings.TrimSpace(params.Title)
	p.Category = strings.TrimSpace(params.Category)
	p.LocationValue = strings.TrimSpace(params.LocationValue)

	if lt, err := vo.NewListingType(strings.TrimSpace(params.ListingType)); err == nil {
		p.ListingType = &lt
	}
	// an empty or unknown feature type must not default to HOMES here
	if ft := vo.FeatureType(strings.TrimSpace(params.FeatureType)); ft.IsValid() {
		p.FeatureType = &ft
	}

	p.MinPrice = parseBound(firstNonEmpty(params.MinPrice, params.MinPriceAlt))
	p.MaxPrice = parseBound(firstNonEmpty(params.MaxPrice, params.MaxPriceAlt))

	p.Bedrooms = parseCount(params.Bedrooms)
	p.Bathrooms = parseCount(params.Bathrooms)

	p.Statuses = statuses(params.Status, params.ShowAll)

	if params.UserID != 0 {
		uid := params.UserID
		p.UserID = &uid
	}
	return p
}

// Page parses page and pageSize with defaults 1 and 9.
func Page(page, pageSize string) query.PageFilter {
	return query.NewPageFilter(atoiOrZero(page), atoiOrZero(pageSize))
}

// statuses implements the visibility rule: an explicit status wins verbatim,
// otherwise showAll lifts every restriction and the default is the public set.
func statuses(status string, showAll bool) []vo.ListingStatus {
	if s := strings.TrimSpace(status); s != "" {
		return []vo.ListingStatus{vo.ListingStatus(s)}
	}
	if showAll {
		return nil
	}
	return vo.PublicStatuses()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func parseBound(raw string) *int64 {
	v, ok, err := listing.ParseIntLoose(raw)
	if err != nil || !ok {
		return nil
	}
	return &v
}

func parseCount(raw string) *listing.CountFilter {
	raw = strings.TrimSpace(raw)
	if raw == atLeastSentinel {
		return &listing.CountFilter{Value: 5, AtLeast: true}
	}
	v, ok, err := listing.ParseIntLoose(raw)
	if err != nil || !ok || v == 0 {
		return nil
	}
	return &listing.CountFilter{Value: v}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
