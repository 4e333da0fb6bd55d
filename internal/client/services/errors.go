package services

import "errors"

// Operation-level sentinel errors. Callers match with errors.Is; the
// wrapped cause carries the human-readable detail.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrProfileFetch       = errors.New("failed to fetch user profile")
	ErrTeamCreation       = errors.New("failed to create team")
	ErrDeactivation       = errors.New("failed to deactivate account")
	ErrFetchEvents        = errors.New("failed to fetch events")
	ErrFetchTeams         = errors.New("failed to fetch teams")
)
