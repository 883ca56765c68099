package valueobjects

import "fmt"

// FeatureType is the marketplace segment a listing belongs to.
type FeatureType string

const (
	FeatureTypeHomes       FeatureType = "HOMES"
	FeatureTypeExperiences FeatureType = "EXPERIENCES"
	FeatureTypeServices    FeatureType = "SERVICES"
)

// DefaultFeatureType is assigned when a write omits the feature type.
const DefaultFeatureType = FeatureTypeHomes

var validFeatureTypes = map[FeatureType]bool{
	FeatureTypeHomes:       true,
	FeatureTypeExperiences: true,
	FeatureTypeServices:    true,
}

func (t FeatureType) String() string {
	return string(t)
}

func (t FeatureType) IsValid() bool {
	return validFeatureTypes[t]
}

// IsRestricted reports segments only staff may publish into.
func (t FeatureType) IsRestricted() bool {
	return t == FeatureTypeExperiences || t == FeatureTypeServices
}

func NewFeatureType(s string) (FeatureType, error) {
	if s == "" {
		return DefaultFeatureType, nil
	}
	t := FeatureType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid feature type: %s", s)
	}
	return t, nil
}
