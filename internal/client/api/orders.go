package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// Orders lists the user's orders.
func (c *Client) Orders(ctx context.Context, page, limit int) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelOrder requests cancellation of an order and returns its new state.
func (c *Client) CancelOrder(ctx context.Context, id int64) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
