package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/roadcase/roadcase-cli/internal/client/config"
	"github.com/roadcase/roadcase-cli/internal/client/services"
	"github.com/roadcase/roadcase-cli/internal/logging"
)

// App is the interactive client. It owns the current route and drives the
// session and event services from user commands.
type App struct {
	config   *config.Config
	sessions services.SessionService
	events   services.EventService
	log      logging.Logger
	reader   *bufio.Reader
	route    Route
	loaded   bool
}

// NewApp wires the services into an interactive client. The app starts on
// the login route; the guard moves it to the show list once a session
// appears.
func NewApp(c *config.Config, sessions services.SessionService, events services.EventService, log logging.Logger) *App {
	return &App{
		config:   c,
		sessions: sessions,
		events:   events,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		route:    RouteLogin,
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.State() == services.StateAuthenticated
}

// refreshRoute reapplies the guard to the current route. The REPL calls it
// after every command; the session subscription calls it on state changes.
func (a *App) refreshRoute() {
	next, redirected := Guard(a.sessions.State(), a.route)
	if redirected {
		a.route = next
	}
}

// initialLoad fetches teams and events the first time a session becomes
// available. Failures are recorded by the event service and not retried.
func (a *App) initialLoad(ctx context.Context) {
	if a.loaded {
		return
	}
	a.loaded = true
	if err := a.events.FetchTeams(ctx); err != nil {
		a.log.Warn(ctx, "initial team fetch failed", "error", err)
	}
	if err := a.events.FetchEvents(ctx); err != nil {
		a.log.Warn(ctx, "initial event fetch failed", "error", err)
	}
}

// getStatus renders the prompt status: signed-in user and active band.
func (a *App) getStatus() string {
	session := a.sessions.Session()
	if session == nil {
		return ""
	}
	band := "All Bands"
	if t := a.events.SelectedTeam(); t != nil {
		band = t.Name
	}
	return fmt.Sprintf("(%s | %s)", session.User.Email, band)
}

// Run rehydrates the persisted session and starts the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	a.sessions.Subscribe(func(state services.SessionState) {
		a.refreshRoute()
		if state == services.StateAuthenticated {
			a.initialLoad(ctx)
		}
	})

	a.sessions.Rehydrate(ctx)
	a.refreshRoute()

	fmt.Println("Welcome to RoadCase CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
