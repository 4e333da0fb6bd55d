// Package services contains application services for the RoadCase client.
// This file defines the session service: the owner of the authenticated
// session, its lifecycle operations, and the persisted-token handshake.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/roadcase/roadcase-cli/internal/client/api"
	"github.com/roadcase/roadcase-cli/internal/client/models"
	"github.com/roadcase/roadcase-cli/internal/client/repositories/token"
	"github.com/roadcase/roadcase-cli/internal/common"
	"github.com/roadcase/roadcase-cli/internal/logging"
)

// SessionState is the session lifecycle state.
type SessionState int

const (
	// StateUnknown is the initial state, before Rehydrate has resolved the
	// persisted token. Callers should render nothing while in it.
	StateUnknown SessionState = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// SessionService owns the authenticated session.
//
// Contract:
//   - Rehydrate: resolve the persisted token into a session, once at startup.
//   - SignIn / SignUp: authenticate and persist the issued token. Both end
//     with an explicit profile fetch; the session user always comes from the
//     profile endpoint, never from a login/register response body.
//   - SignOut: clear the persisted token (best-effort) and the session.
//   - CreateTeam: create a band for the current account; membership becomes
//     visible on the next team fetch.
//   - Deactivate: schedule account deletion and sign out. The server keeps
//     the account for a 30-day grace window; signing back in within that
//     window cancels the deletion.
//
// Stateful operations are meant to be driven one at a time by the UI;
// overlapping invocations are not serialized and the last state write wins.
type SessionService interface {
	State() SessionState
	Session() *models.Session
	Loading() bool
	Subscribe(fn func(SessionState))

	Rehydrate(ctx context.Context)
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, name, email, password string) error
	SignOut(ctx context.Context) error
	CreateTeam(ctx context.Context, name string) error
	Deactivate(ctx context.Context) error
}

type sessionService struct {
	client   api.Client
	tokens   token.Store
	log      logging.Logger
	validate *validator.Validate

	mu      sync.Mutex
	state   SessionState
	session *models.Session
	loading bool
	subs    []func(SessionState)
}

// NewSessionService constructs a SessionService bound to the given API
// client and token store. The service starts in StateUnknown with the
// loading flag set, until Rehydrate runs.
func NewSessionService(client api.Client, tokens token.Store, log logging.Logger) SessionService {
	return &sessionService{
		client:   client,
		tokens:   tokens,
		log:      log,
		validate: validator.New(),
		state:    StateUnknown,
		loading:  true,
	}
}

func (s *sessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *sessionService) Session() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *sessionService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subscribe registers an observer invoked on every state transition.
// Observers are called outside the service lock.
func (s *sessionService) Subscribe(fn func(SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *sessionService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *sessionService) publish(session *models.Session, state SessionState) {
	s.mu.Lock()
	s.session = session
	s.state = state
	subs := make([]func(SessionState), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Rehydrate reads the persisted token and verifies it against the profile
// endpoint. An invalid token is cleared; a transport failure leaves the
// token in place for the next run. Either way the final state is never
// StateUnknown. Failures are logged, not surfaced.
func (s *sessionService) Rehydrate(ctx context.Context) {
	defer s.setLoading(false)

	tok, err := s.tokens.Read(ctx)
	if err != nil {
		s.log.Error(ctx, "error reading stored token", "error", err.Error())
		s.publish(nil, StateUnauthenticated)
		return
	}
	if tok == "" {
		s.publish(nil, StateUnauthenticated)
		return
	}

	user, err := s.client.Profile(ctx, tok)
	if err != nil {
		s.log.Warn(ctx, "stored session not restored", "error", err.Error())
		if !errors.Is(err, api.ErrUnavailable) {
			// Token rejected by the server; discard it.
			if clearErr := s.tokens.Clear(ctx); clearErr != nil {
				s.log.Error(ctx, "error clearing stored token", "error", clearErr.Error())
			}
		}
		s.publish(nil, StateUnauthenticated)
		return
	}

	s.publish(&models.Session{Token: tok, User: user}, StateAuthenticated)
}

type signInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignIn authenticates with email and password. The issued token is
// persisted before the in-memory session is published; the session user is
// taken from a follow-up profile fetch.
func (s *sessionService) SignIn(ctx context.Context, email, password string) error {
	if err := s.validate.Struct(signInInput{Email: email, Password: password}); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	tok, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.log.Error(ctx, "sign-in failed", "error", err.Error())
		if errors.Is(err, api.ErrUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	if err := s.tokens.Write(ctx, tok); err != nil {
		s.log.Error(ctx, "error persisting token", "error", err.Error())
		return fmt.Errorf("persist token: %w", err)
	}

	user, err := s.client.Profile(ctx, tok)
	if err != nil {
		s.log.Error(ctx, "profile fetch after sign-in failed", "error", err.Error())
		return fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}

	s.publish(&models.Session{Token: tok, User: user}, StateAuthenticated)
	return nil
}

type signUpInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// SignUp registers a new account. Like SignIn, it persists the issued
// token and then fetches the profile explicitly rather than trusting the
// registration response to match the profile shape.
func (s *sessionService) SignUp(ctx context.Context, name, email, password string) error {
	if err := s.validate.Struct(signUpInput{Name: name, Email: email, Password: password}); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	tok, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		s.log.Error(ctx, "sign-up failed", "error", err.Error())
		if errors.Is(err, api.ErrUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	if err := s.tokens.Write(ctx, tok); err != nil {
		s.log.Error(ctx, "error persisting token", "error", err.Error())
		return fmt.Errorf("persist token: %w", err)
	}

	user, err := s.client.Profile(ctx, tok)
	if err != nil {
		s.log.Error(ctx, "profile fetch after sign-up failed", "error", err.Error())
		return fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}

	s.publish(&models.Session{Token: tok, User: user}, StateAuthenticated)
	return nil
}

// SignOut clears the persisted token and the in-memory session. A failed
// store clear is logged but never blocks the sign-out: the session state is
// cleared regardless.
func (s *sessionService) SignOut(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error(ctx, "error clearing stored token", "error", err.Error())
	}
	s.publish(nil, StateUnauthenticated)
	return nil
}

// CreateTeam creates a new band owned by the current account. The session
// itself is not mutated; the new membership shows up on the next team
// fetch.
func (s *sessionService) CreateTeam(ctx context.Context, name string) error {
	sess := s.Session()
	if sess == nil {
		return common.ErrNotAuthenticated
	}
	if name == "" {
		return fmt.Errorf("%w: band name is required", common.ErrValidation)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.client.CreateTeam(ctx, sess.Token, name); err != nil {
		s.log.Error(ctx, "team creation failed", "error", err.Error())
		return fmt.Errorf("%w: %v", ErrTeamCreation, err)
	}
	return nil
}

// Deactivate schedules deletion of the current account and signs out. The
// account is deleted after 30 days unless the user signs back in before
// then; confirmation prompts are the caller's responsibility.
func (s *sessionService) Deactivate(ctx context.Context) error {
	sess := s.Session()
	if sess == nil {
		return common.ErrNotAuthenticated
	}

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.client.Deactivate(ctx, sess.Token); err != nil {
		s.log.Error(ctx, "account deactivation failed", "error", err.Error())
		return fmt.Errorf("%w: %v", ErrDeactivation, err)
	}

	return s.SignOut(ctx)
}
