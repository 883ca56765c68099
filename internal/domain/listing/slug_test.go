package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Sunny Villa with Pool", "sunny-villa-with-pool"},
		{"  --Loft__in   the  City!!  ", "loft-in-the-city"},
		{"3 BR / 2 BA Apartment", "3-br-2-ba-apartment"},
		{"Café Déjà Vu", "cafe-deja-vu"},
		{"!!!", "listing"},
		{"", "listing"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_TruncatesLongTitles(t *testing.T) {
	s := Slugify(strings.Repeat("ab ", 150))
	assert.LessOrEqual(t, len(s), maxSlugLength)
	assert.False(t, strings.HasSuffix(s, "-"))
}

func TestSuffixedSlug(t *testing.T) {
	assert.Equal(t, "sunny-villa-417", SuffixedSlug("sunny-villa", 417))
	lo, hi := SlugSuffixRange()
	assert.Equal(t, 100, lo)
	assert.Equal(t, 999, hi)
}
