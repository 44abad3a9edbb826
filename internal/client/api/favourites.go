package api

import (
	"context"
	"net/http"

	"github.com/vpotapovs/roamer/internal/client/models"
)

type favouriteRequest struct {
	Kind     models.FavouriteKind `json:"entityType"`
	EntityID int64                `json:"entityId"`
}

// Favourites lists the current user's favourites.
func (c *Client) Favourites(ctx context.Context) ([]models.Favourite, error) {
	var out []models.Favourite
	if err := c.do(ctx, http.MethodGet, "/favourites", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFavourite adds an entity to the favourites list and returns the updated
// list. The response, not any local mutation, is the new truth.
func (c *Client) AddFavourite(ctx context.Context, kind models.FavouriteKind, entityID int64) ([]models.Favourite, error) {
	var out []models.Favourite
	if err := c.do(ctx, http.MethodPost, "/favourites", nil, favouriteRequest{Kind: kind, EntityID: entityID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveFavourite removes an entity from the favourites list and returns the
// updated list.
func (c *Client) RemoveFavourite(ctx context.Context, kind models.FavouriteKind, entityID int64) ([]models.Favourite, error) {
	var out []models.Favourite
	if err := c.do(ctx, http.MethodDelete, "/favourites", nil, favouriteRequest{Kind: kind, EntityID: entityID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
