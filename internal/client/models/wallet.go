package models

import "time"

// Wallet is the authoritative balance snapshot from /wallet/me.
type Wallet struct {
	Balance float64 `json:"balance"`
}

// WalletRequest is a pending top-up request.
type WalletRequest struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transaction is one wallet ledger entry.
type Transaction struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Kind      string    `json:"kind"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Order is a server-owned booking record. The client only lists orders and
// requests cancellation by id.
type Order struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	RefID     int64     `json:"refId"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review left by a user on a hotel, attraction or trip.
type Review struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"userId"`
	UserName  string        `json:"userName,omitempty"`
	Kind      FavouriteKind `json:"entityType"`
	EntityID  int64         `json:"entityId"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Notification pushed by the backend (booking confirmations, wallet events).
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
