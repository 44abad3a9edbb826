package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// CreateReviewParams is the review submission body.
type CreateReviewParams struct {
	Kind     models.FavouriteKind `json:"entityType"`
	EntityID int64                `json:"entityId"`
	Rating   int                  `json:"rating"`
	Comment  string               `json:"comment,omitempty"`
}

// Reviews lists reviews for one entity.
func (c *Client) Reviews(ctx context.Context, kind models.FavouriteKind, entityID int64, page, limit int) ([]models.Review, error) {
	q := pageQuery(page, limit)
	q["entityType"] = []string{string(kind)}
	q["entityId"] = []string{strconv.FormatInt(entityID, 10)}

	var out []models.Review
	if err := c.do(ctx, http.MethodGet, "/reviews", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReview submits a review and returns the stored record.
func (c *Client) CreateReview(ctx context.Context, p CreateReviewParams) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
