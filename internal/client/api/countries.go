package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// Countries lists the public country catalogue.
func (c *Client) Countries(ctx context.Context, page, limit int) ([]models.Country, error) {
	var out []models.Country
	if err := c.do(ctx, http.MethodGet, "/countries/public", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Country fetches one country with its cities.
func (c *Client) Country(ctx context.Context, id int64) (*models.Country, []models.City, error) {
	var out struct {
		models.Country
		Cities []models.City `json:"cities"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/countries/public/%d", id), nil, nil, &out); err != nil {
		return nil, nil, err
	}
	return &out.Country, out.Cities, nil
}
