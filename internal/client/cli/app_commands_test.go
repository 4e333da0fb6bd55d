package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadcase/roadcase-cli/internal/client/config"
	"github.com/roadcase/roadcase-cli/internal/client/models"
	"github.com/roadcase/roadcase-cli/internal/client/services"
	"github.com/roadcase/roadcase-cli/internal/logging"
)

// fakeSessions is a scriptable services.SessionService.
type fakeSessions struct {
	state   services.SessionState
	session *models.Session
	subs    []func(services.SessionState)

	signInEmail    string
	signInPassword string
	signUpArgs     []string
	createdTeams   []string
	signOuts       int
	deactivations  int
	rehydrations   int

	signInErr     error
	signUpErr     error
	signOutErr    error
	createTeamErr error
	deactivateErr error
}

func (f *fakeSessions) State() services.SessionState { return f.state }
func (f *fakeSessions) Session() *models.Session     { return f.session }
func (f *fakeSessions) Loading() bool                { return false }
func (f *fakeSessions) Subscribe(fn func(services.SessionState)) {
	f.subs = append(f.subs, fn)
}

func (f *fakeSessions) publish() {
	for _, fn := range f.subs {
		fn(f.state)
	}
}

func (f *fakeSessions) Rehydrate(ctx context.Context) {
	f.rehydrations++
	f.publish()
}

func (f *fakeSessions) SignIn(ctx context.Context, email, password string) error {
	f.signInEmail, f.signInPassword = email, password
	if f.signInErr != nil {
		return f.signInErr
	}
	f.state = services.StateAuthenticated
	f.session = &models.Session{Token: "tok", User: models.User{Name: "Sam", Email: email}}
	f.publish()
	return nil
}

func (f *fakeSessions) SignUp(ctx context.Context, name, email, password string) error {
	f.signUpArgs = []string{name, email, password}
	if f.signUpErr != nil {
		return f.signUpErr
	}
	f.state = services.StateAuthenticated
	f.session = &models.Session{Token: "tok", User: models.User{Name: name, Email: email}}
	f.publish()
	return nil
}

func (f *fakeSessions) SignOut(ctx context.Context) error {
	f.signOuts++
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.state = services.StateUnauthenticated
	f.session = nil
	f.publish()
	return nil
}

func (f *fakeSessions) CreateTeam(ctx context.Context, name string) error {
	if f.createTeamErr != nil {
		return f.createTeamErr
	}
	f.createdTeams = append(f.createdTeams, name)
	return nil
}

func (f *fakeSessions) Deactivate(ctx context.Context) error {
	f.deactivations++
	if f.deactivateErr != nil {
		return f.deactivateErr
	}
	return f.SignOut(ctx)
}

// fakeEvents is a scriptable services.EventService.
type fakeEvents struct {
	events   []models.Event
	teams    []models.Team
	selected *models.Team
	lastErr  string

	fetchEventCalls int
	fetchTeamCalls  int
	createdReqs     []models.CreateEventRequest
	deletedIDs      []string
	leftTeams       []string
	invites         [][3]string
	revokedIDs      []string

	fetchEventsErr error
	fetchTeamsErr  error
	createOK       bool
	deleteOK       bool
	updateOK       bool
	invitations    []models.TeamInvitation
	invitationsErr error
	inviteErr      error
	revokeErr      error
	leaveErr       error
	getEvent       models.Event
	getEventErr    error
}

func (f *fakeEvents) FetchEvents(ctx context.Context) error {
	f.fetchEventCalls++
	return f.fetchEventsErr
}

func (f *fakeEvents) FetchTeams(ctx context.Context) error {
	f.fetchTeamCalls++
	return f.fetchTeamsErr
}

func (f *fakeEvents) Events() []models.Event     { return f.events }
func (f *fakeEvents) AllEvents() []models.Event  { return f.events }
func (f *fakeEvents) Teams() []models.Team       { return f.teams }
func (f *fakeEvents) SelectedTeam() *models.Team { return f.selected }
func (f *fakeEvents) SelectTeam(t *models.Team)  { f.selected = t }
func (f *fakeEvents) Loading() bool              { return false }
func (f *fakeEvents) Err() string                { return f.lastErr }

func (f *fakeEvents) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	return f.getEvent, f.getEventErr
}

func (f *fakeEvents) CreateEvent(ctx context.Context, req models.CreateEventRequest) bool {
	f.createdReqs = append(f.createdReqs, req)
	return f.createOK
}

func (f *fakeEvents) UpdateEvent(ctx context.Context, eventID string, req models.CreateEventRequest) bool {
	return f.updateOK
}

func (f *fakeEvents) DeleteEvent(ctx context.Context, eventID string) bool {
	f.deletedIDs = append(f.deletedIDs, eventID)
	return f.deleteOK
}

func (f *fakeEvents) Invitations(ctx context.Context) ([]models.TeamInvitation, error) {
	return f.invitations, f.invitationsErr
}

func (f *fakeEvents) InviteUser(ctx context.Context, teamID, email, role string) error {
	if f.inviteErr != nil {
		return f.inviteErr
	}
	f.invites = append(f.invites, [3]string{teamID, email, role})
	return nil
}

func (f *fakeEvents) DeleteInvitation(ctx context.Context, invitationID string) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revokedIDs = append(f.revokedIDs, invitationID)
	return nil
}

func (f *fakeEvents) LeaveTeam(ctx context.Context, teamID string) error {
	if f.leaveErr != nil {
		return f.leaveErr
	}
	f.leftTeams = append(f.leftTeams, teamID)
	return nil
}

func newTestApp(sessions *fakeSessions, events *fakeEvents) *App {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	log := logging.NewZerologLogger(zerolog.Nop())
	return NewApp(cfg, sessions, events, log)
}

// stubInputs scripts successive getSimpleText answers. After the list is
// exhausted, further prompts return EOF.
func stubInputs(t *testing.T, lines ...string) {
	t.Helper()
	orig := getSimpleText
	t.Cleanup(func() { getSimpleText = orig })
	i := 0
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(io.Writer) (string, error) { return pw, nil }
}

func stubConfirmations(t *testing.T, answers ...bool) *int {
	t.Helper()
	orig := getConfirmation
	t.Cleanup(func() { getConfirmation = orig })
	asked := new(int)
	getConfirmation = func(*bufio.Reader, string, io.Writer) (bool, error) {
		if *asked >= len(answers) {
			return false, io.EOF
		}
		answer := answers[*asked]
		*asked++
		return answer, nil
	}
	return asked
}

func TestApp_Login(t *testing.T) {
	t.Run("success updates session and route", func(t *testing.T) {
		stubInputs(t, "sam@tour.example")
		stubPassword(t, "secret")

		sessions := &fakeSessions{state: services.StateUnauthenticated}
		app := newTestApp(sessions, &fakeEvents{})

		require.NoError(t, app.Login(context.Background()))
		assert.Equal(t, "sam@tour.example", sessions.signInEmail)
		assert.Equal(t, "secret", sessions.signInPassword)

		app.refreshRoute()
		assert.Equal(t, RouteShows, app.route)
	})

	t.Run("invalid credentials keep login route", func(t *testing.T) {
		stubInputs(t, "sam@tour.example")
		stubPassword(t, "wrong")

		sessions := &fakeSessions{state: services.StateUnauthenticated, signInErr: services.ErrInvalidCredentials}
		app := newTestApp(sessions, &fakeEvents{})

		err := app.Login(context.Background())
		require.ErrorIs(t, err, services.ErrInvalidCredentials)

		app.refreshRoute()
		assert.Equal(t, RouteLogin, app.route)
	})
}

func TestApp_Register(t *testing.T) {
	t.Run("onboarding creates first band", func(t *testing.T) {
		stubInputs(t, "Sam", "sam@tour.example", "The Van Tour")
		stubPassword(t, "longenough")

		sessions := &fakeSessions{state: services.StateUnauthenticated}
		events := &fakeEvents{}
		app := newTestApp(sessions, events)

		require.NoError(t, app.Register(context.Background()))
		assert.Equal(t, []string{"Sam", "sam@tour.example", "longenough"}, sessions.signUpArgs)
		assert.Equal(t, []string{"The Van Tour"}, sessions.createdTeams)
		assert.Equal(t, 1, events.fetchTeamCalls)
	})

	t.Run("blank band name skips onboarding", func(t *testing.T) {
		stubInputs(t, "Sam", "sam@tour.example", "")
		stubPassword(t, "longenough")

		sessions := &fakeSessions{state: services.StateUnauthenticated}
		events := &fakeEvents{}
		app := newTestApp(sessions, events)

		require.NoError(t, app.Register(context.Background()))
		assert.Empty(t, sessions.createdTeams)
		assert.Zero(t, events.fetchTeamCalls)
	})

	t.Run("registration failure skips onboarding", func(t *testing.T) {
		stubInputs(t, "Sam", "sam@tour.example")
		stubPassword(t, "longenough")

		sessions := &fakeSessions{state: services.StateUnauthenticated, signUpErr: services.ErrRegistrationFailed}
		app := newTestApp(sessions, &fakeEvents{})

		err := app.Register(context.Background())
		require.ErrorIs(t, err, services.ErrRegistrationFailed)
		assert.Empty(t, sessions.createdTeams)
	})
}

func TestApp_Deactivate(t *testing.T) {
	t.Run("double confirmation deactivates", func(t *testing.T) {
		asked := stubConfirmations(t, true, true)

		sessions := &fakeSessions{state: services.StateAuthenticated, session: &models.Session{Token: "t"}}
		app := newTestApp(sessions, &fakeEvents{})

		require.NoError(t, app.Deactivate(context.Background()))
		assert.Equal(t, 2, *asked)
		assert.Equal(t, 1, sessions.deactivations)
	})

	t.Run("second refusal aborts", func(t *testing.T) {
		asked := stubConfirmations(t, true, false)

		sessions := &fakeSessions{state: services.StateAuthenticated}
		app := newTestApp(sessions, &fakeEvents{})

		require.NoError(t, app.Deactivate(context.Background()))
		assert.Equal(t, 2, *asked)
		assert.Zero(t, sessions.deactivations)
	})

	t.Run("first refusal skips second prompt", func(t *testing.T) {
		asked := stubConfirmations(t, false)

		sessions := &fakeSessions{state: services.StateAuthenticated}
		app := newTestApp(sessions, &fakeEvents{})

		require.NoError(t, app.Deactivate(context.Background()))
		assert.Equal(t, 1, *asked)
		assert.Zero(t, sessions.deactivations)
	})
}

func TestApp_Logout(t *testing.T) {
	sessions := &fakeSessions{state: services.StateAuthenticated, session: &models.Session{Token: "t"}}
	app := newTestApp(sessions, &fakeEvents{})
	app.route = RouteShows

	require.NoError(t, app.Logout(context.Background()))
	assert.Equal(t, 1, sessions.signOuts)

	app.refreshRoute()
	assert.Equal(t, RouteLogin, app.route)
}

func TestApp_SelectBand(t *testing.T) {
	teams := []models.Team{
		{ID: "t1", Name: "Night Drive", Role: models.RoleOwner},
		{ID: "t2", Name: "Glasshouse", Role: models.RoleEditor},
	}

	t.Run("selects by id", func(t *testing.T) {
		stubInputs(t, "t2")
		events := &fakeEvents{teams: teams}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.SelectBand(context.Background()))
		require.NotNil(t, events.selected)
		assert.Equal(t, "Glasshouse", events.selected.Name)
	})

	t.Run("all clears the filter", func(t *testing.T) {
		stubInputs(t, "all")
		events := &fakeEvents{teams: teams, selected: &teams[0]}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.SelectBand(context.Background()))
		assert.Nil(t, events.selected)
	})

	t.Run("unknown id leaves selection untouched", func(t *testing.T) {
		stubInputs(t, "nope")
		events := &fakeEvents{teams: teams, selected: &teams[0]}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.SelectBand(context.Background()))
		require.NotNil(t, events.selected)
		assert.Equal(t, "t1", events.selected.ID)
	})
}

func TestApp_NewShow(t *testing.T) {
	t.Run("requires an active band", func(t *testing.T) {
		events := &fakeEvents{createOK: true}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.NewShow(context.Background()))
		assert.Empty(t, events.createdReqs)
	})

	t.Run("builds the payload from the wizard", func(t *testing.T) {
		stubInputs(t,
			"09/14/2026",      // date
			"Headline Show",   // event type
			"The Fillmore",    // venue name
			"San Francisco",   // city
			"CA",              // state
			"load in at 3",    // notes
			"Night Drive",     // first lineup act
			"Opener",          // second lineup act
			"",                // lineup done
			"Soundcheck",      // schedule title
			"15:00",           // start
			"16:00",           // end
			"0",               // offset
			"",                // schedule done
		)
		events := &fakeEvents{createOK: true, selected: &models.Team{ID: "t1", Name: "Night Drive", Role: models.RoleOwner}}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.NewShow(context.Background()))
		require.Len(t, events.createdReqs, 1)

		req := events.createdReqs[0]
		assert.Equal(t, "09/14/2026", req.Date)
		assert.Equal(t, "t1", req.TeamID)
		assert.Equal(t, "The Fillmore", req.VenueName)
		require.Len(t, req.Billings, 2)
		assert.Equal(t, 0, req.Billings[0].Position)
		assert.Equal(t, "Opener", req.Billings[1].Name)
		require.Len(t, req.ScheduleItems, 1)
		assert.Equal(t, "Soundcheck", req.ScheduleItems[0].Title)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		stubInputs(t, "2026-09-14")
		events := &fakeEvents{createOK: true, selected: &models.Team{ID: "t1"}}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.Error(t, app.NewShow(context.Background()))
		assert.Empty(t, events.createdReqs)
	})
}

func TestApp_DeleteShow(t *testing.T) {
	t.Run("confirmed delete", func(t *testing.T) {
		stubInputs(t, "ev1")
		stubConfirmations(t, true)

		events := &fakeEvents{deleteOK: true}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.DeleteShow(context.Background()))
		assert.Equal(t, []string{"ev1"}, events.deletedIDs)
	})

	t.Run("declined delete does nothing", func(t *testing.T) {
		stubInputs(t, "ev1")
		stubConfirmations(t, false)

		events := &fakeEvents{deleteOK: true}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.DeleteShow(context.Background()))
		assert.Empty(t, events.deletedIDs)
	})
}

func TestApp_Invite(t *testing.T) {
	t.Run("sends invitation for editable band", func(t *testing.T) {
		stubInputs(t, "friend@tour.example", "admin")

		events := &fakeEvents{selected: &models.Team{ID: "t1", Role: models.RoleOwner}}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.Invite(context.Background()))
		require.Len(t, events.invites, 1)
		assert.Equal(t, [3]string{"t1", "friend@tour.example", "admin"}, events.invites[0])
	})

	t.Run("read-only role cannot invite", func(t *testing.T) {
		events := &fakeEvents{selected: &models.Team{ID: "t1", Role: "viewer"}}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.Invite(context.Background()))
		assert.Empty(t, events.invites)
	})

	t.Run("blank role defaults to editor", func(t *testing.T) {
		stubInputs(t, "friend@tour.example", "")

		events := &fakeEvents{selected: &models.Team{ID: "t1", Role: models.RoleAdmin}}
		app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

		require.NoError(t, app.Invite(context.Background()))
		require.Len(t, events.invites, 1)
		assert.Equal(t, models.RoleEditor, events.invites[0][2])
	})
}

func TestApp_Leave(t *testing.T) {
	stubInputs(t, "t1")
	stubConfirmations(t, true)

	events := &fakeEvents{}
	app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

	require.NoError(t, app.Leave(context.Background()))
	assert.Equal(t, []string{"t1"}, events.leftTeams)
}

func TestApp_Leave_Error(t *testing.T) {
	stubInputs(t, "t1")
	stubConfirmations(t, true)

	events := &fakeEvents{leaveErr: errors.New("boom")}
	app := newTestApp(&fakeSessions{state: services.StateAuthenticated}, events)

	require.Error(t, app.Leave(context.Background()))
	assert.Empty(t, events.leftTeams)
}
