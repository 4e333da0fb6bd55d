package api

import (
	"context"

	"github.com/roadcase/roadcase-cli/internal/client/models"
)

// Client is the RoadCase API contract. Login and Register are the only
// unauthenticated calls; everything else takes the bearer token issued by
// them.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	Profile(ctx context.Context, token string) (models.User, error)
	Deactivate(ctx context.Context, token string) error

	ListEvents(ctx context.Context, token string) ([]models.Event, error)
	GetEvent(ctx context.Context, token, eventID string) (models.Event, error)
	CreateEvent(ctx context.Context, token string, req models.CreateEventRequest) (models.Event, error)
	UpdateEvent(ctx context.Context, token, eventID string, req models.CreateEventRequest) (models.Event, error)
	DeleteEvent(ctx context.Context, token, eventID string) error

	ListTeams(ctx context.Context, token string) ([]models.Team, error)
	CreateTeam(ctx context.Context, token, name string) (models.Team, error)
	ListInvitations(ctx context.Context, token string) ([]models.TeamInvitation, error)
	InviteUser(ctx context.Context, token, teamID, email, role string) error
	DeleteInvitation(ctx context.Context, token, invitationID string) error
	LeaveTeam(ctx context.Context, token, teamID string) error
}
