package api

import (
	"context"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// Notifications lists the user's notifications.
func (c *Client) Notifications(ctx context.Context, page, limit int) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", pageQuery(page, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
