// Package booking implements the client-side reservation flows: room-type
// bookings and custom trips. All checks here are advisory pre-submission
// guards over cached snapshots; the server remains the authority and every
// attempt ends with an authoritative re-fetch of the data it touched.
package booking

import (
	"context"
	"time"

	"github.com/vpotapovs/roamer/internal/client/api"
	"github.com/vpotapovs/roamer/internal/client/models"
	"github.com/vpotapovs/roamer/internal/logging"
)

const dateLayout = "2006-01-02"

// Wallet is the slice of the session store the flows need: the cached
// balance for local pre-checks and the reconciliation helper run after every
// successful booking.
type Wallet interface {
	Balance() float64
	RefreshBalance(ctx context.Context) error
}

// RoomAPI is the backend surface of the room flow. *api.Client satisfies it.
type RoomAPI interface {
	RoomType(ctx context.Context, hotelID, roomTypeID int64) (*api.RoomTypeDetail, error)
	BookRoom(ctx context.Context, hotelID, roomTypeID int64, p api.BookRoomParams) (*models.Order, error)
}

// DateRange is a half-open [CheckIn, CheckOut) stay. The selector semantics
// are two-step: the first pick sets check-in, the second must be strictly
// later.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange validates the two-step selection.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	checkIn = checkIn.Truncate(24 * time.Hour)
	checkOut = checkOut.Truncate(24 * time.Hour)
	if !checkOut.After(checkIn) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// Nights is the number of nights in the stay.
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Dates lists every occupied night as a "2006-01-02" string: check-in
// inclusive, check-out exclusive.
func (r DateRange) Dates() []string {
	dates := make([]string, 0, r.Nights())
	for d := r.CheckIn; d.Before(r.CheckOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// MinAvailable returns the lowest free-room count across every night of the
// range. Dates missing from the snapshot count as zero.
func MinAvailable(avail models.Availability, r DateRange) int {
	min := -1
	for _, date := range r.Dates() {
		n := avail.Available(date)
		if min < 0 || n < min {
			min = n
		}
	}
	if min < 0 {
		return 0
	}
	return min
}

// CheckInventory rejects the request when any night has fewer free rooms
// than requested, reporting the true minimum found.
func CheckInventory(avail models.Availability, r DateRange, rooms int) error {
	if min := MinAvailable(avail, r); min < rooms {
		return &NotEnoughRoomsError{Requested: rooms, MinAvailable: min}
	}
	return nil
}

// TotalPrice computes nights × rooms × nightly rate.
func TotalPrice(nightlyRate float64, r DateRange, rooms int) float64 {
	return float64(r.Nights()) * float64(rooms) * nightlyRate
}

// RoomResult reports a completed attempt. Availability is the snapshot
// re-fetched after the attempt so callers never keep showing stale inventory.
type RoomResult struct {
	Order        *models.Order
	Total        float64
	Availability models.Availability
}

// RoomFlow runs room-type bookings end to end.
type RoomFlow struct {
	api    RoomAPI
	wallet Wallet
	log    logging.Logger
}

func NewRoomFlow(apiClient RoomAPI, wallet Wallet, log logging.Logger) *RoomFlow {
	return &RoomFlow{api: apiClient, wallet: wallet, log: log}
}

// Quote fetches a fresh inventory snapshot and runs every local pre-check
// without submitting: date range, per-night inventory, total price, balance.
func (f *RoomFlow) Quote(ctx context.Context, hotelID, roomTypeID int64, rooms int, r DateRange) (*api.RoomTypeDetail, float64, error) {
	detail, err := f.api.RoomType(ctx, hotelID, roomTypeID)
	if err != nil {
		return nil, 0, err
	}

	if err := CheckInventory(detail.Availability, r, rooms); err != nil {
		return nil, 0, err
	}

	total := TotalPrice(detail.RoomType.NightlyRate, r, rooms)
	if balance := f.wallet.Balance(); balance < total {
		return nil, 0, &InsufficientBalanceError{Required: total, Balance: balance}
	}

	return detail, total, nil
}

// Book runs the full flow: local pre-checks, submission, then authoritative
// refresh of both the wallet balance and the availability window. The
// availability re-fetch happens whether the booking succeeded or not.
func (f *RoomFlow) Book(ctx context.Context, hotelID, roomTypeID int64, rooms int, r DateRange) (*RoomResult, error) {
	detail, total, err := f.Quote(ctx, hotelID, roomTypeID, rooms, r)
	if err != nil {
		return nil, err
	}

	order, bookErr := f.api.BookRoom(ctx, hotelID, roomTypeID, api.BookRoomParams{
		CheckInDate:  r.CheckIn.Format(dateLayout),
		CheckOutDate: r.CheckOut.Format(dateLayout),
		RoomsBooked:  rooms,
		RoomTypeID:   roomTypeID,
	})

	result := &RoomResult{Order: order, Total: total, Availability: detail.Availability}

	// Always refresh the inventory window after an attempt: our own booking,
	// or a competing one that made the server reject us, has aged the snapshot.
	if fresh, err := f.api.RoomType(ctx, hotelID, roomTypeID); err == nil {
		result.Availability = fresh.Availability
	} else {
		f.log.Warn(ctx, "availability refresh failed", "hotel_id", hotelID, "room_type_id", roomTypeID, "err", err)
	}

	if bookErr != nil {
		return result, bookErr
	}

	if err := f.wallet.RefreshBalance(ctx); err != nil {
		f.log.Warn(ctx, "balance refresh failed after booking", "order_id", order.ID, "err", err)
	}

	f.log.Info(ctx, "room booked", "order_id", order.ID, "hotel_id", hotelID, "rooms", rooms, "total", total)
	return result, nil
}
