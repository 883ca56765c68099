package listing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an optional integer that accepts a JSON number or a numeric
// string. null, "" and a missing key all leave it unset.
type FlexInt struct {
	value *int64
}

func NewFlexInt(v int64) FlexInt {
	return FlexInt{value: &v}
}

// Ptr returns the parsed value, nil when unset.
func (f FlexInt) Ptr() *int64 {
	if f.value == nil {
		return nil
	}
	v := *f.value
	return &v
}

func (f FlexInt) IsSet() bool {
	return f.value != nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(*f.value, 10)), nil
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		f.value = nil
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	v, ok, err := ParseIntLoose(raw)
	if err != nil {
		return err
	}
	if !ok {
		f.value = nil
		return nil
	}
	f.value = &v
	return nil
}

// ParseIntLoose parses s as an integer, truncating a fractional part.
// Blank input reports ok=false without an error.
func ParseIntLoose(s string) (int64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0, false, fmt.Errorf("%q is not a number", s)
	}
	return int64(f), true, nil
}
