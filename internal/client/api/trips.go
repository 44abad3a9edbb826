package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// PlanPOI is one attraction slot inside a custom-trip day, with its visit
// order within the day.
type PlanPOI struct {
	AttractionID int64 `json:"attractionId"`
	Order        int   `json:"order"`
}

// PlanDay is one day of a custom trip. Date uses "2006-01-02".
type PlanDay struct {
	Date string    `json:"date"`
	POIs []PlanPOI `json:"pois"`
}

// CustomTripPlan is the full draft submitted to the calculate and create
// endpoints. Hotel/guide/meet/drop are optional; meet and drop are required
// by the server when no hotel is included.
type CustomTripPlan struct {
	CityID           int64            `json:"cityId"`
	StartDate        string           `json:"startDate"`
	EndDate          string           `json:"endDate"`
	People           int              `json:"people"`
	Days             []PlanDay        `json:"days"`
	GuideID          *int64           `json:"guideId,omitempty"`
	HotelID          *int64           `json:"hotelId,omitempty"`
	RoomTypeID       *int64           `json:"roomTypeId,omitempty"`
	MeetPoint        *models.GeoPoint `json:"meetPoint,omitempty"`
	DropPoint        *models.GeoPoint `json:"dropPoint,omitempty"`
	IncludeMeals     bool             `json:"includeMeals"`
	IncludeTransport bool             `json:"includeTransport"`
}

// CreateCustomTripParams is the creation body: the draft plus the server
// quote it was confirmed against.
type CreateCustomTripParams struct {
	CustomTripPlan
	Quote models.TripQuote `json:"quote"`
}

type bookTripRequest struct {
	Seats int `json:"seats"`
}

// Trips lists fixed-departure trips.
func (c *Client) Trips(ctx context.Context, page, limit int) ([]models.Trip, error) {
	var out []models.Trip
	if err := c.do(ctx, http.MethodGet, "/trips", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Trip fetches one trip.
func (c *Client) Trip(ctx context.Context, id int64) (*models.Trip, error) {
	var out models.Trip
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/trips/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookTrip books seats on a fixed-departure trip.
func (c *Client) BookTrip(ctx context.Context, id int64, seats int) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/trips/%d/book", id), nil, bookTripRequest{Seats: seats}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CalculateCustomTrip submits the draft for server-side pricing. The returned
// quote is authoritative; the client never recomputes it.
func (c *Client) CalculateCustomTrip(ctx context.Context, plan CustomTripPlan) (*models.TripQuote, error) {
	var out models.TripQuote
	if err := c.do(ctx, http.MethodPost, "/trips/custom/calculate", nil, plan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomTrip creates the trip from a confirmed draft and quote.
func (c *Client) CreateCustomTrip(ctx context.Context, p CreateCustomTripParams) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodPost, "/trips/custom", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
