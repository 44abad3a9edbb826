package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// Guides lists guides, optionally filtered by city (cityID > 0).
func (c *Client) Guides(ctx context.Context, cityID int64) ([]models.Guide, error) {
	q := query{}
	if cityID > 0 {
		q["cityId"] = []string{strconv.FormatInt(cityID, 10)}
	}

	var out []models.Guide
	if err := c.do(ctx, http.MethodGet, "/guides", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Guide fetches one guide.
func (c *Client) Guide(ctx context.Context, id int64) (*models.Guide, error) {
	var out models.Guide
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/guides/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
