// Package prefs persists user preferences that survive logouts. Currently a
// single dark-mode flag.
package prefs

import (
	"context"

	"github.com/vpotapovs/roamer/internal/client/storage"
)

// Store reads and writes preference flags through the key/value repository.
type Store struct {
	repo storage.Repository
}

func New(repo storage.Repository) *Store {
	return &Store{repo: repo}
}

// Dark reports whether dark mode is enabled. Missing or unreadable values
// default to false.
func (s *Store) Dark(ctx context.Context) bool {
	v, err := s.repo.Get(ctx, storage.KeyDarkMode)
	if err != nil {
		return false
	}
	return string(v) == "1"
}

// SetDark persists the dark-mode flag.
func (s *Store) SetDark(ctx context.Context, dark bool) error {
	v := []byte("0")
	if dark {
		v = []byte("1")
	}
	return s.repo.Set(ctx, storage.KeyDarkMode, v)
}

// Toggle flips the flag and returns the new value.
func (s *Store) Toggle(ctx context.Context) (bool, error) {
	next := !s.Dark(ctx)
	if err := s.SetDark(ctx, next); err != nil {
		return false, err
	}
	return next, nil
}
