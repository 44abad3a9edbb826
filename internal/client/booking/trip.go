package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vpotapovs/roamer/internal/client/api"
	"github.com/vpotapovs/roamer/internal/client/models"
	"github.com/vpotapovs/roamer/internal/logging"
)

// TripAPI is the backend surface of the trip flows. *api.Client satisfies it.
type TripAPI interface {
	BookTrip(ctx context.Context, id int64, seats int) (*models.Order, error)
	CalculateCustomTrip(ctx context.Context, plan api.CustomTripPlan) (*models.TripQuote, error)
	CreateCustomTrip(ctx context.Context, p api.CreateCustomTripParams) (*models.Order, error)
}

// PlannedPOI is an attraction scheduled into a draft day.
type PlannedPOI struct {
	Attraction models.Attraction
	Order      int
	Minutes    int
}

// DraftDay is one day of the draft.
type DraftDay struct {
	Date time.Time
	POIs []PlannedPOI
}

// Draft is a user-assembled, not-yet-priced itinerary. It lives purely in
// memory: it is never persisted, and it survives a failed submission so the
// user can retry.
type Draft struct {
	ID     string
	CityID int64
	People int
	Window DayWindow
	Days   []DraftDay

	GuideID    *int64
	HotelID    *int64
	RoomTypeID *int64
	Meet       *models.GeoPoint
	Drop       *models.GeoPoint

	IncludeMeals     bool
	IncludeTransport bool
}

// NewDraft builds an empty draft with one day per date of [start, end]
// inclusive. The window defaults to DefaultDayWindow when zero.
func NewDraft(cityID int64, people int, start, end time.Time, window DayWindow) (*Draft, error) {
	if people < 1 {
		return nil, fmt.Errorf("party size must be at least 1")
	}
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	if window == (DayWindow{}) {
		window = DefaultDayWindow
	}
	if _, err := window.Minutes(); err != nil {
		return nil, err
	}

	d := &Draft{
		ID:     uuid.NewString(),
		CityID: cityID,
		People: people,
		Window: window,
	}
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		d.Days = append(d.Days, DraftDay{Date: date})
	}
	return d, nil
}

// UsedMinutes sums the visit durations already scheduled on a day.
func (d *Draft) UsedMinutes(day int) int {
	if day < 0 || day >= len(d.Days) {
		return 0
	}
	total := 0
	for _, p := range d.Days[day].POIs {
		total += p.Minutes
	}
	return total
}

// AddPOI schedules an attraction onto a day after checking the day's time
// budget. On rejection the draft is left untouched.
func (d *Draft) AddPOI(day int, a models.Attraction) error {
	if day < 0 || day >= len(d.Days) {
		return fmt.Errorf("day %d out of range", day+1)
	}

	minutes, err := ParseVisitMinutes(a.Duration)
	if err != nil {
		return err
	}

	window, err := d.Window.Minutes()
	if err != nil {
		return err
	}

	requested := d.UsedMinutes(day) + minutes
	if requested > window {
		return &DayOverflowError{Day: day, Window: window, Requested: requested}
	}

	d.Days[day].POIs = append(d.Days[day].POIs, PlannedPOI{
		Attraction: a,
		Order:      len(d.Days[day].POIs) + 1,
		Minutes:    minutes,
	})
	return nil
}

// HasPOIs reports whether any day has at least one attraction.
func (d *Draft) HasPOIs() bool {
	for _, day := range d.Days {
		if len(day.POIs) > 0 {
			return true
		}
	}
	return false
}

// plan assembles the wire payload for the calculate/create endpoints.
func (d *Draft) plan() api.CustomTripPlan {
	days := make([]api.PlanDay, 0, len(d.Days))
	for _, day := range d.Days {
		pd := api.PlanDay{Date: day.Date.Format(dateLayout)}
		for _, p := range day.POIs {
			pd.POIs = append(pd.POIs, api.PlanPOI{AttractionID: p.Attraction.ID, Order: p.Order})
		}
		days = append(days, pd)
	}

	plan := api.CustomTripPlan{
		CityID:           d.CityID,
		People:           d.People,
		Days:             days,
		GuideID:          d.GuideID,
		HotelID:          d.HotelID,
		RoomTypeID:       d.RoomTypeID,
		MeetPoint:        d.Meet,
		DropPoint:        d.Drop,
		IncludeMeals:     d.IncludeMeals,
		IncludeTransport: d.IncludeTransport,
	}
	if len(d.Days) > 0 {
		plan.StartDate = d.Days[0].Date.Format(dateLayout)
		plan.EndDate = d.Days[len(d.Days)-1].Date.Format(dateLayout)
	}
	return plan
}

// TripFlow runs fixed-trip seat bookings and the custom-trip
// calculate/confirm sequence.
type TripFlow struct {
	api    TripAPI
	wallet Wallet
	log    logging.Logger
}

func NewTripFlow(apiClient TripAPI, wallet Wallet, log logging.Logger) *TripFlow {
	return &TripFlow{api: apiClient, wallet: wallet, log: log}
}

// BookSeats books seats on a fixed-departure trip: local balance pre-check,
// submission, then authoritative balance refresh.
func (f *TripFlow) BookSeats(ctx context.Context, trip *models.Trip, seats int) (*models.Order, error) {
	if seats < 1 {
		return nil, fmt.Errorf("seat count must be at least 1")
	}

	total := float64(seats) * trip.PricePerSeat
	if balance := f.wallet.Balance(); balance < total {
		return nil, &InsufficientBalanceError{Required: total, Balance: balance}
	}

	order, err := f.api.BookTrip(ctx, trip.ID, seats)
	if err != nil {
		return nil, err
	}

	if err := f.wallet.RefreshBalance(ctx); err != nil {
		f.log.Warn(ctx, "balance refresh failed after trip booking", "order_id", order.ID, "err", err)
	}

	f.log.Info(ctx, "trip booked", "order_id", order.ID, "trip_id", trip.ID, "seats", seats)
	return order, nil
}

// Calculate submits the draft for server-side pricing. The server owns the
// returned figures.
func (f *TripFlow) Calculate(ctx context.Context, d *Draft) (*models.TripQuote, error) {
	if !d.HasPOIs() {
		return nil, ErrEmptyDraft
	}
	return f.api.CalculateCustomTrip(ctx, d.plan())
}

// Confirm re-validates the draft against the quote and creates the trip.
// Checks: balance covers the quoted total; meet and drop coordinates are
// present when no hotel is part of the draft. The draft is never mutated, so
// a failed creation can simply be retried.
func (f *TripFlow) Confirm(ctx context.Context, d *Draft, quote *models.TripQuote) (*models.Order, error) {
	if balance := f.wallet.Balance(); balance < quote.Total {
		return nil, &InsufficientBalanceError{Required: quote.Total, Balance: balance}
	}
	if d.HotelID == nil && (d.Meet == nil || d.Drop == nil) {
		return nil, ErrMissingMeetPoint
	}

	order, err := f.api.CreateCustomTrip(ctx, api.CreateCustomTripParams{
		CustomTripPlan: d.plan(),
		Quote:          *quote,
	})
	if err != nil {
		return nil, err
	}

	if err := f.wallet.RefreshBalance(ctx); err != nil {
		f.log.Warn(ctx, "balance refresh failed after trip creation", "order_id", order.ID, "err", err)
	}

	f.log.Info(ctx, "custom trip created", "order_id", order.ID, "draft_id", d.ID, "total", quote.Total)
	return order, nil
}
