package listing

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *int64
		wantErr bool
	}{
		{"number", `150000`, int64Ptr(150000), false},
		{"numeric string", `"150000"`, int64Ptr(150000), false},
		{"fraction truncated", `"150000.75"`, int64Ptr(150000), false},
		{"float number", `3.0`, int64Ptr(3), false},
		{"empty string", `""`, nil, false},
		{"blank string", `"  "`, nil, false},
		{"null", `null`, nil, false},
		{"garbage", `"abc"`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexInt
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Ptr())
		})
	}
}

func TestFlexInt_MissingKeyStaysUnset(t *testing.T) {
	var body struct {
		Area FlexInt `json:"area"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	assert.False(t, body.Area.IsSet())

	out, err := json.Marshal(NewFlexInt(4))
	require.NoError(t, err)
	assert.Equal(t, "4", string(out))
}

func TestParseIntLoose_OutOfRange(t *testing.T) {
	tests := []string{
		"9223372036854775807.5",
		"-9223372036854775808.5",
		"1e19",
		"-1e300",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			v, ok, err := ParseIntLoose(in)
			require.Error(t, err)
			assert.False(t, ok)
			assert.Zero(t, v)
		})
	}

	v, ok, err := ParseIntLoose("9223372036854775807")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), v)
}
