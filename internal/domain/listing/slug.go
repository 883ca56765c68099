package listing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

const (
	// fallbackSlug is used when a title has no transliterable alphanumerics
	fallbackSlug  = "listing"
	maxSlugLength = 200

	slugSuffixMin = 100
	slugSuffixMax = 999
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into an ASCII kebab-case slug: transliterated,
// lowercased, every run of non-alphanumerics collapsed into one hyphen and
// leading/trailing hyphens trimmed.
func Slugify(title string) string {
	s := nonAlphanumeric.ReplaceAllString(slug.Make(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	if s == "" {
		return fallbackSlug
	}
	return s
}

// SuffixedSlug appends the numeric collision suffix to base.
func SuffixedSlug(base string, suffix int) string {
	return fmt.Sprintf("%s-%d", base, suffix)
}

// SlugSuffixRange is the inclusive range collision suffixes are drawn from.
func SlugSuffixRange() (minimum, maximum int) {
	return slugSuffixMin, slugSuffixMax
}
