package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// Attractions lists attractions.
func (c *Client) Attractions(ctx context.Context, page, limit int) ([]models.Attraction, error) {
	var out []models.Attraction
	if err := c.do(ctx, http.MethodGet, "/attractions", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Attraction fetches one attraction.
func (c *Client) Attraction(ctx context.Context, id int64) (*models.Attraction, error) {
	var out models.Attraction
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/attractions/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
