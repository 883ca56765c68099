package listing

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func validFields() Fields {
	return Fields{
		Title:       "Sunny Villa with Pool",
		Description: "Four bedrooms, sea view.",
		ImageSrc:    []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
		Address:     "12 Coast Road",
		Features:    "pool, garden",
		Category:    "Villa",
		ListingType: "SALE",
		Location: &LocationInput{
			Label:     "Limassol",
			Latitude:  float64Ptr(34.7071),
			Longitude: float64Ptr(33.0226),
		},
		Price:    int64Ptr(150000),
		Bedrooms: int64Ptr(5),
	}
}
