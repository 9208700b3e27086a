// Package cli is the view and form layer: a REPL whose commands map to the
// views of the management UI. All backend-call failures are converted to
// notifications at this boundary; nothing propagates uncaught past a command
// handler.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/mssbox/blindboxctl/internal/api"
	"github.com/mssbox/blindboxctl/internal/gate"
	"github.com/mssbox/blindboxctl/internal/logging"
	"github.com/mssbox/blindboxctl/internal/state"
	"github.com/mssbox/blindboxctl/internal/storage"
)

// App drives the REPL. It holds the API surface, the state container and the
// navigation state (current path plus a history stack for the "go back"
// recovery of a role denial).
type App struct {
	api    api.API
	state  *state.Container
	store  storage.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	currentPath string
	history     []string

	// pending form values survive a rejected submission so the form stays
	// populated on retry.
	pendingBrand *brandForm
	pendingBox   *boxForm

	lastFlushedID int64
}

// NewApp wires the view layer together. The auth-failure hook of the API
// client should be pointed at a.OnAuthFailure by the caller so a 401 lands
// the user back on the login view.
func NewApp(apiClient api.API, container *state.Container, store storage.Store, log logging.Logger) *App {
	return &App{
		api:         apiClient,
		state:       container,
		store:       store,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		currentPath: "/",
	}
}

// OnAuthFailure is the forced-logout navigation: the session is already torn
// down by the pipeline; the container forgets the user and the view resets to
// the login path with history replaced.
func (a *App) OnAuthFailure() {
	a.state.ExpireSession(context.Background())
	a.currentPath = gate.LoginPath
	a.history = nil
}

// Run starts the REPL and blocks until the user exits or input ends.
// Outstanding notification timers are cancelled on the way out.
func (a *App) Run(ctx context.Context) {
	defer a.state.Close()
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.state.IsAuthenticated(ctx)
}

// status renders the prompt segment: current user (if any) and path.
func (a *App) status(ctx context.Context) string {
	if u, ok := a.state.CurrentUser(); ok && a.isLoggedIn(ctx) {
		return u.Email + " " + a.currentPath
	}
	return "guest " + a.currentPath
}
