package models

// GeoPoint is a WGS84 coordinate pair used for meet/drop locations.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Country as listed by the public catalogue endpoints.
type Country struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// City as listed under a country.
type City struct {
	ID          int64  `json:"id"`
	CountryID   int64  `json:"countryId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// CityPlaces is the combined payload of a city with its hotels and
// attractions, as returned by the with-hotels-attractions endpoint.
type CityPlaces struct {
	City        City         `json:"city"`
	Hotels      []Hotel      `json:"hotels"`
	Attractions []Attraction `json:"attractions"`
}
