package listing

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Images is the ordered list of image URLs of a listing. On input it accepts
// a JSON array, a string holding a JSON-encoded array, or a single bare URL.
type Images []string

func (im *Images) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*im = nil
		return nil
	}
	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*im = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*im = ParseImageSrc([]byte(single))
	return nil
}

// ParseImageSrc decodes a stored image_src value. Rows written before the
// array encoding hold a bare URL; malformed JSON is treated the same way.
func ParseImageSrc(raw []byte) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}
	}
	if raw[0] == '[' {
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			return compactImages(list)
		}
	}
	if raw[0] == '"' {
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			return compactImages([]string{single})
		}
	}
	return compactImages([]string{string(raw)})
}

// EncodeImageSrc renders images in the canonical JSON array encoding.
func EncodeImageSrc(images []string) []byte {
	if images == nil {
		images = []string{}
	}
	data, _ := json.Marshal(images)
	return data
}

func compactImages(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
