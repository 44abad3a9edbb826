// Package session owns the client session: the signed-in user, the token
// pair, and their persistence across restarts. It is the single source of
// session truth; everything else reads through the Store.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vpotapovs/roamer/internal/client/api"
	"github.com/vpotapovs/roamer/internal/client/models"
	"github.com/vpotapovs/roamer/internal/client/storage"
	"github.com/vpotapovs/roamer/internal/dbx"
	"github.com/vpotapovs/roamer/internal/logging"
)

// State is the auth store lifecycle state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateBootstrapping   State = "bootstrapping"
	StateAuthenticated   State = "authenticated"
)

// API is the slice of the backend client the session store needs.
// *api.Client satisfies it; tests provide fakes.
type API interface {
	Register(ctx context.Context, p api.RegisterParams) (*api.AuthPayload, error)
	Login(ctx context.Context, email, password string) (*api.AuthPayload, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (*api.AuthPayload, error)
	AddFavourite(ctx context.Context, kind models.FavouriteKind, entityID int64) ([]models.Favourite, error)
	RemoveFavourite(ctx context.Context, kind models.FavouriteKind, entityID int64) ([]models.Favourite, error)
	WalletMe(ctx context.Context) (*models.Wallet, error)
}

// Store holds the session and guards it with a mutex: the REPL, the booking
// flows and the token source all touch it. All mutations go through the
// server first; local state is only ever overwritten from server responses.
type Store struct {
	api API
	db  *sql.DB
	log logging.Logger

	mu           sync.RWMutex
	state        State
	user         *models.User
	accessToken  string
	refreshToken string
}

// New builds a Store in StateUnauthenticated. db is the client database
// opened via storage.Open.
func New(apiClient API, db *sql.DB, log logging.Logger) *Store {
	return &Store{api: apiClient, db: db, log: log, state: StateUnauthenticated}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// AccessToken returns the current bearer token, "" when signed out.
// Suitable as an api.TokenSource.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// User returns a copy of the signed-in user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Favourites = append([]models.Favourite(nil), s.user.Favourites...)
	return &u
}

// Balance returns the cached wallet balance, 0 when signed out.
func (s *Store) Balance() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 0
	}
	return s.user.Balance
}

// IsFavourite reports membership in the cached favourites list.
func (s *Store) IsFavourite(kind models.FavouriteKind, entityID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.HasFavourite(kind, entityID)
}

// Bootstrap restores the session on process start. With a persisted,
// non-expired refresh token it exchanges the token for a fresh pair; on any
// failure it clears all stored session data and lands in
// StateUnauthenticated. Never returns an error for the "no session" case.
func (s *Store) Bootstrap(ctx context.Context) error {
	s.setState(StateBootstrapping)

	repo := storage.NewSQLiteRepository(s.db)
	stored, err := repo.Get(ctx, storage.KeyRefreshToken)
	if err != nil {
		s.setState(StateUnauthenticated)
		return fmt.Errorf("failed to read stored session: %w", err)
	}
	if len(stored) == 0 {
		s.setState(StateUnauthenticated)
		return nil
	}

	refreshToken := string(stored)
	if tokenExpired(refreshToken, time.Now()) {
		s.log.Info(ctx, "stored refresh token expired, clearing session")
		if err := s.clear(ctx); err != nil {
			return err
		}
		s.setState(StateUnauthenticated)
		return nil
	}

	payload, err := s.api.Refresh(ctx, refreshToken)
	if err != nil {
		s.log.Warn(ctx, "token refresh failed, clearing session", "err", err)
		if cerr := s.clear(ctx); cerr != nil {
			return cerr
		}
		s.setState(StateUnauthenticated)
		return nil
	}

	return s.install(ctx, payload)
}

// Login authenticates and persists the returned session.
func (s *Store) Login(ctx context.Context, email, password string) error {
	payload, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.install(ctx, payload)
}

// Register signs up and persists the returned session.
func (s *Store) Register(ctx context.Context, p api.RegisterParams) error {
	payload, err := s.api.Register(ctx, p)
	if err != nil {
		return err
	}
	return s.install(ctx, payload)
}

// Logout invalidates the session server-side on a best-effort basis, then
// unconditionally clears local state. Idempotent: calling it while signed
// out succeeds and leaves the session cleared.
func (s *Store) Logout(ctx context.Context) error {
	if s.State() == StateAuthenticated {
		if err := s.api.Logout(ctx); err != nil {
			s.log.Warn(ctx, "server-side logout failed", "err", err)
		}
	}

	if err := s.clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.state = StateUnauthenticated
	s.mu.Unlock()
	return nil
}

// ToggleFavourite adds or removes the entity server-side and replaces the
// cached favourites list with the server's response.
func (s *Store) ToggleFavourite(ctx context.Context, kind models.FavouriteKind, entityID int64) error {
	if s.State() != StateAuthenticated {
		return api.ErrUnauthorized
	}

	var (
		updated []models.Favourite
		err     error
	)
	if s.IsFavourite(kind, entityID) {
		updated, err = s.api.RemoveFavourite(ctx, kind, entityID)
	} else {
		updated, err = s.api.AddFavourite(ctx, kind, entityID)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.user != nil {
		s.user.Favourites = updated
	}
	s.mu.Unlock()
	return s.persistUser(ctx)
}

// RefreshBalance re-fetches the wallet and overwrites the cached balance.
// This is the single reconciliation helper used after every
// balance-affecting action.
func (s *Store) RefreshBalance(ctx context.Context) error {
	if s.State() != StateAuthenticated {
		return api.ErrUnauthorized
	}

	wallet, err := s.api.WalletMe(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.user != nil {
		s.user.Balance = wallet.Balance
	}
	s.mu.Unlock()
	return s.persistUser(ctx)
}

// install stores a fresh auth payload in memory and on disk, moving to
// StateAuthenticated.
func (s *Store) install(ctx context.Context, payload *api.AuthPayload) error {
	user := payload.User

	if err := s.persist(ctx, &user, payload.Tokens); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.accessToken = payload.Tokens.AccessToken
	s.refreshToken = payload.Tokens.RefreshToken
	s.state = StateAuthenticated
	s.mu.Unlock()
	return nil
}

// persist writes the full session in one transaction.
func (s *Store) persist(ctx context.Context, user *models.User, tokens api.TokenPair) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, storage.KeyAccessToken, []byte(tokens.AccessToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, storage.KeyRefreshToken, []byte(tokens.RefreshToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, storage.KeyUser, encoded); err != nil {
			return err
		}
		return repo.Set(ctx, storage.KeyLoggedIn, []byte("1"))
	})
}

// persistUser rewrites only the stored user snapshot.
func (s *Store) persistUser(ctx context.Context) error {
	u := s.User()
	if u == nil {
		return nil
	}
	encoded, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return storage.NewSQLiteRepository(s.db).Set(ctx, storage.KeyUser, encoded)
}

// clear removes all persisted session keys in one transaction. Preference
// keys (theme flag) survive a logout.
func (s *Store) clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		for _, key := range []string{storage.KeyAccessToken, storage.KeyRefreshToken, storage.KeyUser, storage.KeyLoggedIn} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// tokenExpired inspects the JWT exp claim without verifying the signature
// (the client has no signing key). Tokens that do not parse or carry no exp
// are treated as live; the server remains the authority.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
