package cli

import "github.com/roadcase/roadcase-cli/internal/client/services"

// Route identifies a screen of the client. The REPL keeps exactly one
// route active at a time.
type Route string

const (
	RouteLogin      Route = "login"
	RouteRegister   Route = "register"
	RouteOnboarding Route = "onboarding"
	RouteShows      Route = "shows"
	RouteShowDetail Route = "show"
	RouteNewShow    Route = "new"
	RouteBands      Route = "bands"
	RouteSettings   Route = "settings"
)

// authRoutes is the route group reachable without a session.
var authRoutes = map[Route]bool{
	RouteLogin:      true,
	RouteRegister:   true,
	RouteOnboarding: true,
}

// Guard decides whether the current route must change for the given
// session state. It returns the route to navigate to and true when a
// redirect is required, or the current route and false otherwise.
//
// Rules:
//   - StateUnknown: never redirect; the caller renders nothing until the
//     persisted token is resolved.
//   - StateUnauthenticated outside the auth group: redirect to login.
//   - StateAuthenticated inside the auth group: redirect to the show list.
//
// Guard is a pure function and is idempotent: applying it to its own
// result under the same state never yields another redirect.
func Guard(state services.SessionState, current Route) (Route, bool) {
	switch state {
	case services.StateUnauthenticated:
		if !authRoutes[current] {
			return RouteLogin, true
		}
	case services.StateAuthenticated:
		if authRoutes[current] {
			return RouteShows, true
		}
	}
	return current, false
}
