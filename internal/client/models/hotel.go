package models

// Hotel is a bookable property in a city.
type Hotel struct {
	ID          int64      `json:"id"`
	CityID      int64      `json:"cityId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Address     string     `json:"address,omitempty"`
	Stars       int        `json:"stars"`
	Rating      float64    `json:"rating"`
	Images      []string   `json:"images,omitempty"`
	RoomTypes   []RoomType `json:"roomTypes,omitempty"`
}

// RoomType is a bookable room category with its own nightly rate and per-date
// inventory.
type RoomType struct {
	ID          int64   `json:"id"`
	HotelID     int64   `json:"hotelId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	NightlyRate float64 `json:"nightlyRate"`
	Capacity    int     `json:"capacity"`
	TotalRooms  int     `json:"totalRooms"`
}

// Availability is a read-only inventory snapshot for one room type.
// Days maps "2006-01-02" dates to the number of rooms still free on that
// date. The snapshot is not decremented locally after a booking; callers
// must re-fetch it to observe the effect of their own booking.
type Availability struct {
	RoomTypeID int64          `json:"roomTypeId"`
	TotalRooms int            `json:"totalRooms"`
	Days       map[string]int `json:"days"`
}

// Available returns the free-room count for a "2006-01-02" date. Dates absent
// from the snapshot are treated as fully booked.
func (a Availability) Available(date string) int {
	if a.Days == nil {
		return 0
	}
	return a.Days[date]
}
