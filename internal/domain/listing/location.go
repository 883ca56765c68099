package listing

// Location is the geographic anchor of a listing. Label, latitude and
// longitude always travel together.
type Location struct {
	Label     string
	Latitude  float64
	Longitude float64
}

// LocationInput is the write-side shape of a location; every part is required.
type LocationInput struct {
	Label     string   `json:"label" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

func (in *LocationInput) toLocation() *Location {
	if in == nil || in.Latitude == nil || in.Longitude == nil {
		return nil
	}
	return &Location{Label: in.Label, Latitude: *in.Latitude, Longitude: *in.Longitude}
}

// NewLocation returns nil unless all three parts are present.
func NewLocation(label *string, lat, lng *float64) *Location {
	if label == nil || *label == "" || lat == nil || lng == nil {
		return nil
	}
	return &Location{Label: *label, Latitude: *lat, Longitude: *lng}
}
