package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/roadcase/roadcase-cli/internal/client/api"
	"github.com/roadcase/roadcase-cli/internal/client/models"
	"github.com/roadcase/roadcase-cli/internal/client/repositories/token"
	"github.com/roadcase/roadcase-cli/internal/common"
	"github.com/roadcase/roadcase-cli/internal/logging"
)

// EventService holds the client's copy of the event and team collections.
//
// Collections are replaced wholesale on every successful fetch; there is no
// merge. Mutations follow a single consistency discipline: on success the
// affected collection is refetched from the server. A per-collection
// generation counter makes sure a stale in-flight response never overwrites
// a newer one. Fetches are never retried automatically.
type EventService interface {
	FetchEvents(ctx context.Context) error
	FetchTeams(ctx context.Context) error

	// Events returns the team-filtered view; AllEvents ignores the filter.
	Events() []models.Event
	AllEvents() []models.Event
	Teams() []models.Team
	SelectedTeam() *models.Team
	SelectTeam(t *models.Team)

	GetEvent(ctx context.Context, eventID string) (models.Event, error)
	CreateEvent(ctx context.Context, req models.CreateEventRequest) bool
	UpdateEvent(ctx context.Context, eventID string, req models.CreateEventRequest) bool
	DeleteEvent(ctx context.Context, eventID string) bool

	Invitations(ctx context.Context) ([]models.TeamInvitation, error)
	InviteUser(ctx context.Context, teamID, email, role string) error
	DeleteInvitation(ctx context.Context, invitationID string) error
	LeaveTeam(ctx context.Context, teamID string) error

	Loading() bool
	Err() string
}

type eventService struct {
	client  api.Client
	session SessionService
	tokens  token.Store
	log     logging.Logger

	mu       sync.Mutex
	events   []models.Event
	teams    []models.Team
	selected *models.Team
	loading  bool
	lastErr  string

	// Request generations, per collection. issued counts requests started;
	// applied is the generation of the data currently held.
	eventsIssued, eventsApplied uint64
	teamsIssued, teamsApplied   uint64
}

// NewEventService constructs an EventService. The token store is the
// fallback credential source for calls made before the session service has
// rehydrated.
func NewEventService(client api.Client, session SessionService, tokens token.Store, log logging.Logger) EventService {
	return &eventService{client: client, session: session, tokens: tokens, log: log}
}

// bearer resolves the token for an authenticated call: the in-memory
// session first, then a direct token-store read.
func (s *eventService) bearer(ctx context.Context) (string, error) {
	if sess := s.session.Session(); sess != nil {
		return sess.Token, nil
	}
	tok, err := s.tokens.Read(ctx)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", common.ErrNotAuthenticated
	}
	return tok, nil
}

func (s *eventService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *eventService) recordErr(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// FetchEvents replaces the whole event collection on success. The response
// is dropped when a later fetch has already been applied.
func (s *eventService) FetchEvents(ctx context.Context) error {
	s.mu.Lock()
	s.eventsIssued++
	gen := s.eventsIssued
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
	defer s.setLoading(false)

	tok, err := s.bearer(ctx)
	if err != nil {
		s.recordErr(err.Error())
		return fmt.Errorf("%w: %v", ErrFetchEvents, err)
	}

	events, err := s.client.ListEvents(ctx, tok)
	if err != nil {
		s.log.Error(ctx, "error fetching events", "error", err.Error())
		s.recordErr(err.Error())
		return fmt.Errorf("%w: %v", ErrFetchEvents, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen > s.eventsApplied {
		s.eventsApplied = gen
		s.events = events
	} else {
		s.log.Debug(ctx, "dropping stale events response", "generation", gen)
	}
	return nil
}

// FetchTeams replaces the team collection on success. When exactly one team
// is returned it becomes the active filter automatically.
func (s *eventService) FetchTeams(ctx context.Context) error {
	s.mu.Lock()
	s.teamsIssued++
	gen := s.teamsIssued
	s.mu.Unlock()

	tok, err := s.bearer(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchTeams, err)
	}

	teams, err := s.client.ListTeams(ctx, tok)
	if err != nil {
		s.log.Error(ctx, "error fetching teams", "error", err.Error())
		return fmt.Errorf("%w: %v", ErrFetchTeams, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen > s.teamsApplied {
		s.teamsApplied = gen
		s.teams = teams
		if len(teams) == 1 {
			only := teams[0]
			s.selected = &only
		}
	} else {
		s.log.Debug(ctx, "dropping stale teams response", "generation", gen)
	}
	return nil
}

// Events returns the events of the selected team, or every event when no
// team is selected ("All Bands").
func (s *eventService) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return append([]models.Event(nil), s.events...)
	}
	filtered := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		if e.TeamID == s.selected.ID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (s *eventService) AllEvents() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Event(nil), s.events...)
}

func (s *eventService) Teams() []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Team(nil), s.teams...)
}

func (s *eventService) SelectedTeam() *models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	t := *s.selected
	return &t
}

// SelectTeam sets the active filter; nil selects "All Bands".
func (s *eventService) SelectTeam(t *models.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == nil {
		s.selected = nil
		return
	}
	sel := *t
	s.selected = &sel
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	tok, err := s.bearer(ctx)
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: %v", ErrFetchEvents, err)
	}
	event, err := s.client.GetEvent(ctx, tok, eventID)
	if err != nil {
		s.log.Error(ctx, "error fetching event", "event_id", eventID, "error", err.Error())
		return models.Event{}, fmt.Errorf("%w: %v", ErrFetchEvents, err)
	}
	return event, nil
}

// CreateEvent posts a new event and refreshes the collection on success.
// The boolean result keeps UI branching simple; the failure detail is
// available via Err.
func (s *eventService) CreateEvent(ctx context.Context, req models.CreateEventRequest) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	tok, err := s.bearer(ctx)
	if err != nil {
		s.recordErr(err.Error())
		return false
	}

	if _, err := s.client.CreateEvent(ctx, tok, req); err != nil {
		s.log.Error(ctx, "error creating event", "error", err.Error())
		s.recordErr(err.Error())
		return false
	}

	_ = s.FetchEvents(ctx)
	return true
}

// UpdateEvent edits an existing event and refreshes the collection on
// success.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req models.CreateEventRequest) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	tok, err := s.bearer(ctx)
	if err != nil {
		s.recordErr(err.Error())
		return false
	}

	if _, err := s.client.UpdateEvent(ctx, tok, eventID, req); err != nil {
		s.log.Error(ctx, "error updating event", "event_id", eventID, "error", err.Error())
		s.recordErr(err.Error())
		return false
	}

	_ = s.FetchEvents(ctx)
	return true
}

// DeleteEvent removes an event and refreshes the collection on success,
// the same discipline as CreateEvent. On failure the local collection is
// left untouched.
func (s *eventService) DeleteEvent(ctx context.Context, eventID string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	tok, err := s.bearer(ctx)
	if err != nil {
		s.recordErr(err.Error())
		return false
	}

	if err := s.client.DeleteEvent(ctx, tok, eventID); err != nil {
		s.log.Error(ctx, "error deleting event", "event_id", eventID, "error", err.Error())
		s.recordErr(err.Error())
		return false
	}

	_ = s.FetchEvents(ctx)
	return true
}

func (s *eventService) Invitations(ctx context.Context) ([]models.TeamInvitation, error) {
	tok, err := s.bearer(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.ListInvitations(ctx, tok)
}

func (s *eventService) InviteUser(ctx context.Context, teamID, email, role string) error {
	tok, err := s.bearer(ctx)
	if err != nil {
		return err
	}
	if err := s.client.InviteUser(ctx, tok, teamID, email, role); err != nil {
		s.log.Error(ctx, "error inviting user", "team_id", teamID, "error", err.Error())
		return err
	}
	return nil
}

func (s *eventService) DeleteInvitation(ctx context.Context, invitationID string) error {
	tok, err := s.bearer(ctx)
	if err != nil {
		return err
	}
	if err := s.client.DeleteInvitation(ctx, tok, invitationID); err != nil {
		s.log.Error(ctx, "error deleting invitation", "invitation_id", invitationID, "error", err.Error())
		return err
	}
	return nil
}

// LeaveTeam removes the current user from a team and refreshes the team
// collection.
func (s *eventService) LeaveTeam(ctx context.Context, teamID string) error {
	tok, err := s.bearer(ctx)
	if err != nil {
		return err
	}
	if err := s.client.LeaveTeam(ctx, tok, teamID); err != nil {
		s.log.Error(ctx, "error leaving team", "team_id", teamID, "error", err.Error())
		return err
	}

	s.mu.Lock()
	if s.selected != nil && s.selected.ID == teamID {
		s.selected = nil
	}
	s.mu.Unlock()

	_ = s.FetchTeams(ctx)
	return nil
}

func (s *eventService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message recorded by the latest failed operation, or ""
// after a successful fetch.
func (s *eventService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
