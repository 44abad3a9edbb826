package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// City fetches one city from the public catalogue.
func (c *Client) City(ctx context.Context, id int64) (*models.City, error) {
	var out models.City
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cities/public/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CityPlaces fetches a city together with its hotels and attractions.
func (c *Client) CityPlaces(ctx context.Context, id int64) (*models.CityPlaces, error) {
	var out models.CityPlaces
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cities/%d/with-hotels-attractions", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
