package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadcase/roadcase-cli/internal/client/models"
	"github.com/roadcase/roadcase-cli/internal/client/services"
)

func TestApp_GetStatus(t *testing.T) {
	t.Run("empty without a session", func(t *testing.T) {
		app := newTestApp(&fakeSessions{}, &fakeEvents{})
		assert.Equal(t, "", app.getStatus())
	})

	t.Run("shows user and All Bands", func(t *testing.T) {
		sessions := &fakeSessions{
			state:   services.StateAuthenticated,
			session: &models.Session{Token: "t", User: models.User{Email: "sam@tour.example"}},
		}
		app := newTestApp(sessions, &fakeEvents{})
		assert.Equal(t, "(sam@tour.example | All Bands)", app.getStatus())
	})

	t.Run("shows the active band", func(t *testing.T) {
		sessions := &fakeSessions{
			state:   services.StateAuthenticated,
			session: &models.Session{Token: "t", User: models.User{Email: "sam@tour.example"}},
		}
		events := &fakeEvents{selected: &models.Team{ID: "t1", Name: "Night Drive"}}
		app := newTestApp(sessions, events)
		assert.Equal(t, "(sam@tour.example | Night Drive)", app.getStatus())
	})
}

func TestApp_RefreshRoute_UnknownStateHoldsRoute(t *testing.T) {
	app := newTestApp(&fakeSessions{state: services.StateUnknown}, &fakeEvents{})
	app.route = RouteLogin

	app.refreshRoute()
	assert.Equal(t, RouteLogin, app.route)
}

func TestApp_InitialLoadRunsOnce(t *testing.T) {
	sessions := &fakeSessions{state: services.StateAuthenticated}
	events := &fakeEvents{}
	app := newTestApp(sessions, events)

	ctx := context.Background()
	app.initialLoad(ctx)
	app.initialLoad(ctx)

	assert.Equal(t, 1, events.fetchTeamCalls)
	assert.Equal(t, 1, events.fetchEventCalls)
}

// A sign-in published through the subscription must move the shell off the
// auth routes without an explicit command.
func TestApp_SubscriptionDrivesRedirect(t *testing.T) {
	sessions := &fakeSessions{state: services.StateUnauthenticated}
	events := &fakeEvents{}
	app := newTestApp(sessions, events)

	ctx := context.Background()
	sessions.Subscribe(func(state services.SessionState) {
		app.refreshRoute()
		if state == services.StateAuthenticated {
			app.initialLoad(ctx)
		}
	})

	assert.Equal(t, RouteLogin, app.route)

	sessions.state = services.StateAuthenticated
	sessions.session = &models.Session{Token: "t"}
	sessions.publish()

	assert.Equal(t, RouteShows, app.route)
	assert.Equal(t, 1, events.fetchTeamCalls)
	assert.Equal(t, 1, events.fetchEventCalls)
}
