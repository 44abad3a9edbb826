package session

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpotapovs/roamer/internal/client/api"
	"github.com/vpotapovs/roamer/internal/client/models"
	"github.com/vpotapovs/roamer/internal/client/storage"
	"github.com/vpotapovs/roamer/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storedValue(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	v, err := storage.NewSQLiteRepository(db).Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func authPayload(balance float64) *api.AuthPayload {
	return &api.AuthPayload{
		User: models.User{
			ID: 1, Name: "Jo", Username: "jo", Email: "jo@example.com",
			Role: "user", Balance: balance,
		},
		Tokens: api.TokenPair{AccessToken: "at-1", RefreshToken: "rt-1"},
	}
}

// ---- fake API ----

type fakeAPI struct {
	RegisterRet *api.AuthPayload
	RegisterErr error

	LoginRet *api.AuthPayload
	LoginErr error

	LogoutErr   error
	LogoutCalls int

	RefreshRet   *api.AuthPayload
	RefreshErr   error
	RefreshCalls int
	LastRefresh  string

	AddRet    []models.Favourite
	AddErr    error
	RemoveRet []models.Favourite
	RemoveErr error

	WalletRet *models.Wallet
	WalletErr error
}

func (f *fakeAPI) Register(ctx context.Context, p api.RegisterParams) (*api.AuthPayload, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.AuthPayload, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeAPI) Refresh(ctx context.Context, refreshToken string) (*api.AuthPayload, error) {
	f.RefreshCalls++
	f.LastRefresh = refreshToken
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeAPI) AddFavourite(ctx context.Context, kind models.FavouriteKind, entityID int64) ([]models.Favourite, error) {
	return f.AddRet, f.AddErr
}

func (f *fakeAPI) RemoveFavourite(ctx context.Context, kind models.FavouriteKind, entityID int64) ([]models.Favourite, error) {
	return f.RemoveRet, f.RemoveErr
}

func (f *fakeAPI) WalletMe(ctx context.Context) (*models.Wallet, error) {
	return f.WalletRet, f.WalletErr
}

// ---- tests ----

func TestBootstrap_NoStoredToken(t *testing.T) {
	db := setupDB(t)
	f := &fakeAPI{}
	s := New(f, db, testLogger())

	require.NoError(t, s.Bootstrap(context.Background()))

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Zero(t, f.RefreshCalls)
}

func TestBootstrap_ValidRefreshToken(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	live := signedToken(t, time.Now().Add(24*time.Hour))
	require.NoError(t, storage.NewSQLiteRepository(db).Set(ctx, storage.KeyRefreshToken, []byte(live)))

	f := &fakeAPI{RefreshRet: authPayload(75)}
	s := New(f, db, testLogger())

	require.NoError(t, s.Bootstrap(ctx))

	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, 1, f.RefreshCalls)
	assert.Equal(t, live, f.LastRefresh)
	assert.Equal(t, "at-1", s.AccessToken())
	assert.Equal(t, 75.0, s.Balance())

	// fresh pair persisted
	assert.Equal(t, []byte("rt-1"), storedValue(t, db, storage.KeyRefreshToken))
	assert.Equal(t, []byte("1"), storedValue(t, db, storage.KeyLoggedIn))
}

func TestBootstrap_RefreshFailureClearsSession(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	live := signedToken(t, time.Now().Add(time.Hour))
	repo := storage.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, storage.KeyRefreshToken, []byte(live)))
	require.NoError(t, repo.Set(ctx, storage.KeyLoggedIn, []byte("1")))

	f := &fakeAPI{RefreshErr: &api.APIError{StatusCode: 401, Message: "token revoked"}}
	s := New(f, db, testLogger())

	require.NoError(t, s.Bootstrap(ctx))

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Nil(t, storedValue(t, db, storage.KeyRefreshToken))
	assert.Nil(t, storedValue(t, db, storage.KeyLoggedIn))
}

func TestBootstrap_ExpiredTokenSkipsNetwork(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	expired := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, storage.NewSQLiteRepository(db).Set(ctx, storage.KeyRefreshToken, []byte(expired)))

	f := &fakeAPI{}
	s := New(f, db, testLogger())

	require.NoError(t, s.Bootstrap(ctx))

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Zero(t, f.RefreshCalls)
	assert.Nil(t, storedValue(t, db, storage.KeyRefreshToken))
}

func TestLogin_PersistsSession(t *testing.T) {
	db := setupDB(t)
	f := &fakeAPI{LoginRet: authPayload(50)}
	s := New(f, db, testLogger())

	require.NoError(t, s.Login(context.Background(), "jo@example.com", "secret"))

	assert.Equal(t, StateAuthenticated, s.State())
	require.NotNil(t, s.User())
	assert.Equal(t, "jo", s.User().Username)
	assert.Equal(t, []byte("at-1"), storedValue(t, db, storage.KeyAccessToken))
	assert.Contains(t, string(storedValue(t, db, storage.KeyUser)), `"username":"jo"`)
}

func TestLogin_FailurePropagatesWithoutStateChange(t *testing.T) {
	db := setupDB(t)
	wantErr := &api.APIError{StatusCode: 401, Message: "bad credentials"}
	f := &fakeAPI{LoginErr: wantErr}
	s := New(f, db, testLogger())

	err := s.Login(context.Background(), "jo@example.com", "wrong")
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestLogout_ClearsLocalStateEvenWhenServerFails(t *testing.T) {
	db := setupDB(t)
	f := &fakeAPI{LoginRet: authPayload(50), LogoutErr: errors.New("network down")}
	s := New(f, db, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "jo@example.com", "secret"))
	require.NoError(t, s.Logout(ctx))

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Empty(t, s.AccessToken())
	assert.Nil(t, s.User())
	assert.Nil(t, storedValue(t, db, storage.KeyAccessToken))
	assert.Equal(t, 1, f.LogoutCalls)
}

func TestLogout_WhenAlreadyLoggedOutIsIdempotent(t *testing.T) {
	db := setupDB(t)
	f := &fakeAPI{}
	s := New(f, db, testLogger())

	require.NoError(t, s.Logout(context.Background()))
	require.NoError(t, s.Logout(context.Background()))

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Zero(t, f.LogoutCalls)
}

func TestToggleFavourite_TwiceRestoresMembership(t *testing.T) {
	db := setupDB(t)
	f := &fakeAPI{
		LoginRet:  authPayload(50),
		AddRet:    []models.Favourite{{Kind: models.FavouriteHotel, EntityID: 3}},
		RemoveRet: []models.Favourite{},
	}
	s := New(f, db, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "jo@example.com", "secret"))
	require.False(t, s.IsFavourite(models.FavouriteHotel, 3))

	require.NoError(t, s.ToggleFavourite(ctx, models.FavouriteHotel, 3))
	assert.True(t, s.IsFavourite(models.FavouriteHotel, 3))

	require.NoError(t, s.ToggleFavourite(ctx, models.FavouriteHotel, 3))
	assert.False(t, s.IsFavourite(models.FavouriteHotel, 3))
}

func TestToggleFavourite_ServerFailureLeavesListUntouched(t *testing.T) {
	db := setupDB(t)
	f := &fakeAPI{LoginRet: authPayload(50), AddErr: errors.New("boom")}
	s := New(f, db, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "jo@example.com", "secret"))
	require.Error(t, s.ToggleFavourite(ctx, models.FavouriteTrip, 9))
	assert.False(t, s.IsFavourite(models.FavouriteTrip, 9))
}

func TestToggleFavourite_RequiresAuth(t *testing.T) {
	db := setupDB(t)
	s := New(&fakeAPI{}, db, testLogger())

	err := s.ToggleFavourite(context.Background(), models.FavouriteHotel, 1)
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestRefreshBalance_OverwritesCachedBalance(t *testing.T) {
	db := setupDB(t)
	f := &fakeAPI{LoginRet: authPayload(500), WalletRet: &models.Wallet{Balance: 100}}
	s := New(f, db, testLogger())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "jo@example.com", "secret"))
	require.Equal(t, 500.0, s.Balance())

	require.NoError(t, s.RefreshBalance(ctx))
	assert.Equal(t, 100.0, s.Balance())
	assert.Contains(t, string(storedValue(t, db, storage.KeyUser)), `"balance":100`)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, tokenExpired(signedToken(t, now.Add(-time.Minute)), now))
	assert.False(t, tokenExpired(signedToken(t, now.Add(time.Minute)), now))
	// garbage tokens are left for the server to judge
	assert.False(t, tokenExpired("not-a-jwt", now))
}
