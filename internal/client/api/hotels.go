package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// RoomTypeDetail is the room-type payload including its current per-date
// inventory snapshot.
type RoomTypeDetail struct {
	RoomType     models.RoomType     `json:"roomType"`
	Availability models.Availability `json:"availability"`
}

// BookRoomParams is the booking request body. Dates use "2006-01-02".
type BookRoomParams struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	RoomsBooked  int    `json:"roomsBooked"`
	RoomTypeID   int64  `json:"roomTypeId"`
}

// Hotels lists hotels.
func (c *Client) Hotels(ctx context.Context, page, limit int) ([]models.Hotel, error) {
	var out []models.Hotel
	if err := c.do(ctx, http.MethodGet, "/hotels", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Hotel fetches one hotel with its room types.
func (c *Client) Hotel(ctx context.Context, id int64) (*models.Hotel, error) {
	var out models.Hotel
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/hotels/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RoomType fetches one room type of a hotel, including its availability
// snapshot. This is the only source of inventory data; the snapshot is not
// maintained client-side.
func (c *Client) RoomType(ctx context.Context, hotelID, roomTypeID int64) (*RoomTypeDetail, error) {
	var out RoomTypeDetail
	path := fmt.Sprintf("/hotels/%d/room-types/%d", hotelID, roomTypeID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookRoom submits a room-type booking and returns the created order.
func (c *Client) BookRoom(ctx context.Context, hotelID, roomTypeID int64, p BookRoomParams) (*models.Order, error) {
	var out models.Order
	path := fmt.Sprintf("/hotels/%d/room-types/%d/book", hotelID, roomTypeID)
	if err := c.do(ctx, http.MethodPost, path, nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
