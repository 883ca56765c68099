package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize(" v1.2.3 "))
	assert.Equal(t, "", Normalize(""))
}

func TestString(t *testing.T) {
	old := Current
	t.Cleanup(func() { Current = old })

	tests := []struct {
		current string
		want    string
	}{
		{"dev", "dev"},
		{"", "dev"},
		{"1.4", "v1.4.0"},
		{"v2.0.1+build.7", "v2.0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			Current = tt.current
			assert.Equal(t, tt.want, String())
		})
	}
}
