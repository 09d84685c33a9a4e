// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/classdeck-project/classdeck/classroom"
	"github.com/classdeck-project/classdeck/lib/config"
	"github.com/classdeck-project/classdeck/lib/tokenstore"
	"github.com/classdeck-project/classdeck/session"
)

// App bundles the wired client stack every command runs against:
// configuration, the two-tier token store, the API client, and the
// session controller.
type App struct {
	Config   *config.Config
	Tokens   *tokenstore.Store
	Client   *classroom.Client
	Sessions *session.Controller
}

// LoadApp resolves the configuration and wires the stack. When a saved
// session exists and a token is present in either tier, the session
// controller is re-established with the saved identity.
func LoadApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewApp(cfg)
}

// NewApp wires the stack from an already-resolved configuration.
func NewApp(cfg *config.Config) (*App, error) {
	store, err := tokenstore.New(
		&tokenstore.FileTier{Path: cfg.Paths.SessionToken},
		&tokenstore.FileTier{Path: cfg.Paths.Token},
	)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	client, err := classroom.NewClient(classroom.ClientConfig{
		APIURL:     cfg.APIURL,
		TokenStore: store,
		HTTPClient: &http.Client{Timeout: cfg.Timeout()},
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	sessions, err := session.NewController(session.ControllerConfig{
		Tokens: store,
		OnInvalidated: func() {
			ClearSavedSession()
			fmt.Fprintln(os.Stderr, "Session expired. Run 'classdeck login' to authenticate again.")
		},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Tokens: store, Client: client, Sessions: sessions}
	app.restoreSession()
	return app, nil
}

// restoreSession re-establishes the session from the saved identity
// file when a token is still present. A token without a saved identity
// (or vice versa) leaves the session unauthenticated; login repairs
// both.
func (a *App) restoreSession() {
	token, ok := a.Tokens.Get()
	if !ok {
		return
	}
	saved, err := LoadSavedSession()
	if err != nil {
		return
	}
	// Save rewrites the tier the token already lives in, so the
	// remember decision recorded at login is preserved.
	a.Sessions.Establish(saved.User, token, saved.Remember)
}

// RequireSession returns an error telling the user to log in when no
// session is established.
func (a *App) RequireSession() (classroom.User, error) {
	user, ok := a.Sessions.User()
	if !ok {
		return classroom.User{}, fmt.Errorf("not logged in\n\nRun 'classdeck login <username>' first.")
	}
	return user, nil
}

// Context returns the request context for one CLI invocation.
func (a *App) Context() context.Context {
	return context.Background()
}

// logLevel reads CLASSDECK_LOG_LEVEL. CLI output stays quiet by
// default; debug turns on request-level logging.
func logLevel() slog.Level {
	switch os.Getenv("CLASSDECK_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
