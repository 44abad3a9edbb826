// Package models defines client-side copies of backend resources. The server
// owns the authoritative state; these structs hold transient snapshots fetched
// over the REST API.
package models

// FavouriteKind names the entity classes that can be favourited.
type FavouriteKind string

const (
	FavouriteHotel      FavouriteKind = "hotel"
	FavouriteAttraction FavouriteKind = "attraction"
	FavouriteTrip       FavouriteKind = "trip"
)

// Favourite is one entry of a user's favourites list.
type Favourite struct {
	Kind     FavouriteKind `json:"entityType"`
	EntityID int64         `json:"entityId"`
}

// User is the profile snapshot returned by auth and profile endpoints.
// Balance and Favourites are refreshed from the server after mutating calls;
// they are never adjusted locally ahead of confirmation.
type User struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone,omitempty"`
	Avatar     string      `json:"avatar,omitempty"`
	Role       string      `json:"role"`
	Balance    float64     `json:"balance"`
	Favourites []Favourite `json:"favourites"`
}

// HasFavourite reports whether the given entity is in the favourites list.
func (u *User) HasFavourite(kind FavouriteKind, entityID int64) bool {
	for _, f := range u.Favourites {
		if f.Kind == kind && f.EntityID == entityID {
			return true
		}
	}
	return false
}
