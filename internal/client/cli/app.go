// Package cli is the terminal surface of the roamer client: a small REPL
// that drives the session store, the resource API and the booking flows.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/vpotapovs/roamer/internal/client/api"
	"github.com/vpotapovs/roamer/internal/client/booking"
	"github.com/vpotapovs/roamer/internal/client/config"
	"github.com/vpotapovs/roamer/internal/client/prefs"
	"github.com/vpotapovs/roamer/internal/client/session"
	"github.com/vpotapovs/roamer/internal/client/storage"
	"github.com/vpotapovs/roamer/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	api     *api.Client
	session *session.Store
	prefs   *prefs.Store
	rooms   *booking.RoomFlow
	trips   *booking.TripFlow
	reader  *bufio.Reader
}

// NewApp wires the client together: local database, API client, session
// store (installed as the bearer-token source), preference store and the two
// booking flows.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(cfg.ServerBaseURL, cfg.RequestTimeout, log.With("component", "api"))
	sess := session.New(apiClient, db, log.With("component", "session"))
	apiClient.SetTokenSource(sess.AccessToken)

	return &App{
		config:  cfg,
		log:     log,
		db:      db,
		api:     apiClient,
		session: sess,
		prefs:   prefs.New(storage.NewSQLiteRepository(db)),
		rooms:   booking.NewRoomFlow(apiClient, sess, log.With("component", "room-booking")),
		trips:   booking.NewTripFlow(apiClient, sess, log.With("component", "trip-booking")),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run bootstraps the session from persisted state and enters the REPL.
// Cancelling ctx aborts any in-flight request.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session bootstrap failed", "err", err)
	}
	if u := a.session.User(); u != nil {
		fmt.Printf("Welcome back, %s!\n", u.Name)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// alert turns any error into the user-facing message taxonomy: connectivity,
// server-supplied, or local validation. Nothing here is retried or rethrown.
func (a *App) alert(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, api.ErrUnavailable) {
		fmt.Println("Could not reach the server. Check your connection and try again.")
		return
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		fmt.Println(apiErr.Message)
		return
	}

	fmt.Println(err.Error())
}
