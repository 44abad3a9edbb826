package models

import "time"

// Attraction is a point of interest. Duration is the typical visit length in
// "HH:MM:SS" form, as the backend serializes it.
type Attraction struct {
	ID          int64    `json:"id"`
	CityID      int64    `json:"cityId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Duration    string   `json:"duration"`
	TicketPrice float64  `json:"ticketPrice"`
	Rating      float64  `json:"rating"`
	Location    GeoPoint `json:"location"`
}

// Trip is a fixed-departure trip offered by the backend, booked by seat.
type Trip struct {
	ID           int64     `json:"id"`
	CityID       int64     `json:"cityId"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	PricePerSeat float64   `json:"pricePerSeat"`
	SeatsTotal   int       `json:"seatsTotal"`
	SeatsLeft    int       `json:"seatsLeft"`
	Status       string    `json:"status"`
}

// Guide is an optional tour-guide selection for a custom trip.
type Guide struct {
	ID        int64   `json:"id"`
	CityID    int64   `json:"cityId"`
	Name      string  `json:"name"`
	Bio       string  `json:"bio,omitempty"`
	DailyRate float64 `json:"dailyRate"`
	Rating    float64 `json:"rating"`
}

// TripQuote is the server-computed price breakdown for a custom trip draft.
// The server is authoritative; the client never recomputes these figures.
type TripQuote struct {
	PricePerPerson float64 `json:"pricePerPerson"`
	MealsAddon     float64 `json:"mealsAddon"`
	TransportAddon float64 `json:"transportAddon"`
	Total          float64 `json:"total"`
}
