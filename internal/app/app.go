// Package app is the command surface consumed by the presentation layer:
// one entry point per remote operation, plus the sorting and validation
// helpers. It owns the single shared gateway reference. Access is mutually
// exclusive for the whole duration of each call, network round trip
// included, which serializes all remote traffic through one logical session.
//
// Re-authentication is the only operation that replaces the reference rather
// than reading through it: LogIn builds a fresh gateway outside the lock and
// swaps it in under the lock. A gateway's identity is immutable, so a call
// that started against the old reference finishes against the old identity —
// there is no way to observe a half-updated credential set.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"stocklink/internal/apierror"
	"stocklink/internal/client"
	"stocklink/internal/config"
	"stocklink/internal/model"
)

// App holds the mutex-guarded gateway reference. The zero gateway state
// (before the first LogIn) rejects every remote operation.
type App struct {
	mu  sync.Mutex
	cfg *config.Config
	gw  *client.Gateway
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// gateway must be called with a.mu held.
func (a *App) gateway() (*client.Gateway, error) {
	if a.gw == nil {
		return nil, apierror.New(apierror.Service, "app", "not logged in")
	}
	return a.gw, nil
}

// LogIn authenticates and swaps the shared gateway reference. The new
// gateway is constructed before the lock is taken, so a failed handshake
// leaves the current session untouched.
func (a *App) LogIn(ctx context.Context, username, password string) error {
	gw, err := client.Open(ctx, a.cfg, username, password)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.gw = gw
	// Prime the session: a gateway whose identity cannot even read its own
	// permissions is not worth keeping, but by then the swap has happened
	// (last writer wins for the reference).
	if _, err := gw.Permissions(ctx); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("logged in")
	return nil
}

// SignUp creates a new account under the current session.
func (a *App) SignUp(ctx context.Context, username, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.SignUp(ctx, username, password)
}

// Permissions fetches the capability flags of the authenticated user.
func (a *App) Permissions(ctx context.Context) (*model.Permission, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}
	return gw.Permissions(ctx)
}

// UpdateUser upserts the account record.
func (a *App) UpdateUser(ctx context.Context, u *model.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	gw, err := a.gateway()
	if err != nil {
		return err
	}
	return gw.UpdateUser(ctx, u)
}
