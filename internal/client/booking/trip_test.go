package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpotapovs/roamer/internal/client/api"
	"github.com/vpotapovs/roamer/internal/client/models"
)

// ---- fakes ----

type fakeTripAPI struct {
	BookRet   *models.Order
	BookErr   error
	BookCalls int
	LastSeats int

	QuoteRet  *models.TripQuote
	QuoteErr  error
	LastPlan  api.CustomTripPlan
	CalcCalls int

	CreateRet    *models.Order
	CreateErr    error
	CreateCalls  int
	LastCreation api.CreateCustomTripParams
}

func (f *fakeTripAPI) BookTrip(ctx context.Context, id int64, seats int) (*models.Order, error) {
	f.BookCalls++
	f.LastSeats = seats
	return f.BookRet, f.BookErr
}

func (f *fakeTripAPI) CalculateCustomTrip(ctx context.Context, plan api.CustomTripPlan) (*models.TripQuote, error) {
	f.CalcCalls++
	f.LastPlan = plan
	return f.QuoteRet, f.QuoteErr
}

func (f *fakeTripAPI) CreateCustomTrip(ctx context.Context, p api.CreateCustomTripParams) (*models.Order, error) {
	f.CreateCalls++
	f.LastCreation = p
	return f.CreateRet, f.CreateErr
}

func attraction(id int64, duration string) models.Attraction {
	return models.Attraction{ID: id, CityID: 1, Name: "POI", Duration: duration}
}

func newDraft(t *testing.T) *Draft {
	t.Helper()
	d, err := NewDraft(1, 2, day("2024-07-01"), day("2024-07-03"), DayWindow{})
	require.NoError(t, err)
	return d
}

// ---- draft ----

func TestNewDraft_OneDayPerDateInclusive(t *testing.T) {
	d := newDraft(t)
	require.Len(t, d.Days, 3)
	assert.Equal(t, day("2024-07-01"), d.Days[0].Date)
	assert.Equal(t, day("2024-07-03"), d.Days[2].Date)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, DefaultDayWindow, d.Window)
}

func TestNewDraft_Validation(t *testing.T) {
	_, err := NewDraft(1, 0, day("2024-07-01"), day("2024-07-03"), DayWindow{})
	assert.Error(t, err)

	_, err = NewDraft(1, 2, day("2024-07-03"), day("2024-07-01"), DayWindow{})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDraft(1, 2, day("2024-07-01"), day("2024-07-03"), DayWindow{Start: "20:00", End: "08:00"})
	assert.Error(t, err)
}

func TestAddPOI_AccumulatesWithinWindow(t *testing.T) {
	d := newDraft(t)

	require.NoError(t, d.AddPOI(0, attraction(1, "03:00:00")))
	require.NoError(t, d.AddPOI(0, attraction(2, "05:00:00")))
	assert.Equal(t, 480, d.UsedMinutes(0))

	require.Len(t, d.Days[0].POIs, 2)
	assert.Equal(t, 1, d.Days[0].POIs[0].Order)
	assert.Equal(t, 2, d.Days[0].POIs[1].Order)
}

func TestAddPOI_RejectsOverflowWithoutMutation(t *testing.T) {
	// window 09:00-18:00 = 540 min; 500 already used, adding 60 overflows
	d := newDraft(t)
	require.NoError(t, d.AddPOI(0, attraction(1, "08:20:00"))) // 500 min

	err := d.AddPOI(0, attraction(2, "01:00:00"))
	var overflow *DayOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, 540, overflow.Window)
	assert.Equal(t, 560, overflow.Requested)

	// rejection leaves the day untouched
	assert.Equal(t, 500, d.UsedMinutes(0))
	assert.Len(t, d.Days[0].POIs, 1)
}

func TestAddPOI_BadDurationOrDay(t *testing.T) {
	d := newDraft(t)
	assert.Error(t, d.AddPOI(0, attraction(1, "junk")))
	assert.Error(t, d.AddPOI(5, attraction(1, "01:00:00")))
	assert.Error(t, d.AddPOI(-1, attraction(1, "01:00:00")))
}

// ---- calculate / confirm ----

func TestCalculate_AssemblesPlan(t *testing.T) {
	d := newDraft(t)
	require.NoError(t, d.AddPOI(0, attraction(11, "02:00:00")))
	require.NoError(t, d.AddPOI(1, attraction(12, "01:30:00")))
	guide := int64(4)
	d.GuideID = &guide
	d.IncludeMeals = true

	f := &fakeTripAPI{QuoteRet: &models.TripQuote{PricePerPerson: 120, MealsAddon: 30, Total: 300}}
	flow := NewTripFlow(f, &fakeWallet{BalanceRet: 1000}, testLogger())

	quote, err := flow.Calculate(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, 300.0, quote.Total)

	assert.Equal(t, "2024-07-01", f.LastPlan.StartDate)
	assert.Equal(t, "2024-07-03", f.LastPlan.EndDate)
	require.Len(t, f.LastPlan.Days, 3)
	assert.Equal(t, []api.PlanPOI{{AttractionID: 11, Order: 1}}, f.LastPlan.Days[0].POIs)
	assert.Equal(t, &guide, f.LastPlan.GuideID)
	assert.True(t, f.LastPlan.IncludeMeals)
}

func TestCalculate_EmptyDraftRejectedLocally(t *testing.T) {
	f := &fakeTripAPI{}
	flow := NewTripFlow(f, &fakeWallet{}, testLogger())

	_, err := flow.Calculate(context.Background(), newDraft(t))
	require.ErrorIs(t, err, ErrEmptyDraft)
	assert.Zero(t, f.CalcCalls)
}

func TestConfirm_InsufficientBalance(t *testing.T) {
	d := newDraft(t)
	require.NoError(t, d.AddPOI(0, attraction(1, "01:00:00")))
	d.Meet = &models.GeoPoint{Lat: 1, Lng: 2}
	d.Drop = &models.GeoPoint{Lat: 3, Lng: 4}

	f := &fakeTripAPI{}
	flow := NewTripFlow(f, &fakeWallet{BalanceRet: 100}, testLogger())

	_, err := flow.Confirm(context.Background(), d, &models.TripQuote{Total: 250})

	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 250.0, insufficient.Required)
	assert.Zero(t, f.CreateCalls)
}

func TestConfirm_RequiresMeetAndDropWithoutHotel(t *testing.T) {
	d := newDraft(t)
	require.NoError(t, d.AddPOI(0, attraction(1, "01:00:00")))
	d.Meet = &models.GeoPoint{Lat: 1, Lng: 2} // drop missing

	f := &fakeTripAPI{}
	flow := NewTripFlow(f, &fakeWallet{BalanceRet: 1000}, testLogger())

	_, err := flow.Confirm(context.Background(), d, &models.TripQuote{Total: 250})
	require.ErrorIs(t, err, ErrMissingMeetPoint)
	assert.Zero(t, f.CreateCalls)
}

func TestConfirm_HotelSelectionReplacesMeetDrop(t *testing.T) {
	d := newDraft(t)
	require.NoError(t, d.AddPOI(0, attraction(1, "01:00:00")))
	hotel, room := int64(3), int64(9)
	d.HotelID = &hotel
	d.RoomTypeID = &room

	f := &fakeTripAPI{CreateRet: &models.Order{ID: 21, Kind: "custom-trip", Total: 250}}
	w := &fakeWallet{BalanceRet: 1000}
	flow := NewTripFlow(f, w, testLogger())

	order, err := flow.Confirm(context.Background(), d, &models.TripQuote{Total: 250})
	require.NoError(t, err)
	assert.Equal(t, int64(21), order.ID)
	assert.Equal(t, 250.0, f.LastCreation.Quote.Total)
	assert.Equal(t, 1, w.RefreshCalls)
}

func TestConfirm_FailurePreservesDraftForRetry(t *testing.T) {
	d := newDraft(t)
	require.NoError(t, d.AddPOI(0, attraction(1, "01:00:00")))
	d.Meet = &models.GeoPoint{Lat: 1, Lng: 2}
	d.Drop = &models.GeoPoint{Lat: 3, Lng: 4}

	f := &fakeTripAPI{CreateErr: &api.APIError{StatusCode: 500, Message: "try later"}}
	w := &fakeWallet{BalanceRet: 1000}
	flow := NewTripFlow(f, w, testLogger())

	_, err := flow.Confirm(context.Background(), d, &models.TripQuote{Total: 250})
	require.Error(t, err)

	// draft untouched, balance untouched: the user can retry as-is
	assert.Equal(t, 60, d.UsedMinutes(0))
	assert.Zero(t, w.RefreshCalls)

	f.CreateErr = nil
	f.CreateRet = &models.Order{ID: 22}
	_, err = flow.Confirm(context.Background(), d, &models.TripQuote{Total: 250})
	require.NoError(t, err)
}

// ---- seats ----

func TestBookSeats_BalancePreCheck(t *testing.T) {
	trip := &models.Trip{ID: 5, PricePerSeat: 200, SeatsLeft: 10}
	f := &fakeTripAPI{}
	flow := NewTripFlow(f, &fakeWallet{BalanceRet: 300}, testLogger())

	_, err := flow.BookSeats(context.Background(), trip, 2)

	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 400.0, insufficient.Required)
	assert.Zero(t, f.BookCalls)
}

func TestBookSeats_SuccessRefreshesBalance(t *testing.T) {
	trip := &models.Trip{ID: 5, PricePerSeat: 200, SeatsLeft: 10}
	f := &fakeTripAPI{BookRet: &models.Order{ID: 31, Kind: "trip", Total: 400}}
	w := &fakeWallet{BalanceRet: 1000}
	flow := NewTripFlow(f, w, testLogger())

	order, err := flow.BookSeats(context.Background(), trip, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(31), order.ID)
	assert.Equal(t, 2, f.LastSeats)
	assert.Equal(t, 1, w.RefreshCalls)
}

func TestBookSeats_RejectsNonPositiveSeats(t *testing.T) {
	flow := NewTripFlow(&fakeTripAPI{}, &fakeWallet{}, testLogger())
	_, err := flow.BookSeats(context.Background(), &models.Trip{ID: 5}, 0)
	require.Error(t, err)
}
