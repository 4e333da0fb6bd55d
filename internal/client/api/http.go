package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roadcase/roadcase-cli/internal/client/models"
	"github.com/roadcase/roadcase-cli/internal/common"
	"github.com/roadcase/roadcase-cli/internal/logging"
)

// HTTPClient talks JSON over HTTPS to the RoadCase backend.
type HTTPClient struct {
	baseURL    string
	deviceName string
	hc         *http.Client
	log        logging.Logger
}

// NewHTTPClient builds a client for the given base URL. deviceName is sent
// with login requests so the server can label the issued token. timeout is
// the transport-level request timeout; there is no retry policy.
func NewHTTPClient(baseURL, deviceName string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		deviceName: deviceName,
		hc:         &http.Client{Timeout: timeout},
		log:        log,
	}
}

// do performs a single request. A non-nil body is marshalled as JSON; a
// non-nil out receives the decoded response body. token == "" means an
// unauthenticated call.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api transport failure", "path", path, "request_id", requestID, "error", err.Error())
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(ctx, "api request failed", "path", path, "status", resp.StatusCode, "request_id", requestID)
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, ErrRequestFailed)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// tokenResponse is the shape shared by the login and register endpoints.
// Additional fields in the body are ignored.
type tokenResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{
		"email":       email,
		"password":    password,
		"device_name": c.deviceName,
	}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/user", token, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) Deactivate(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/user/deactivate", token, nil, nil)
}

func (c *HTTPClient) ListEvents(ctx context.Context, token string) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, token, eventID string) (models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID), token, nil, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, token string, req models.CreateEventRequest) (models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodPost, "/events/create", token, req, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, token, eventID string, req models.CreateEventRequest) (models.Event, error) {
	var event models.Event
	path := "/events/" + url.PathEscape(eventID) + "/edit"
	if err := c.do(ctx, http.MethodPut, path, token, req, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, token, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventID), token, nil, nil)
}

func (c *HTTPClient) ListTeams(ctx context.Context, token string) ([]models.Team, error) {
	var teams []models.Team
	if err := c.do(ctx, http.MethodGet, "/v2/teams", token, nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *HTTPClient) CreateTeam(ctx context.Context, token, name string) (models.Team, error) {
	var team models.Team
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/teams", token, body, &team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

func (c *HTTPClient) ListInvitations(ctx context.Context, token string) ([]models.TeamInvitation, error) {
	var invitations []models.TeamInvitation
	if err := c.do(ctx, http.MethodGet, "/teams/invitations", token, nil, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

func (c *HTTPClient) InviteUser(ctx context.Context, token, teamID, email, role string) error {
	body := map[string]string{"email": email, "role": role}
	path := "/teams/" + url.PathEscape(teamID) + "/invitations"
	return c.do(ctx, http.MethodPost, path, token, body, nil)
}

func (c *HTTPClient) DeleteInvitation(ctx context.Context, token, invitationID string) error {
	path := "/teams/invitations/" + url.PathEscape(invitationID) + "/delete"
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *HTTPClient) LeaveTeam(ctx context.Context, token, teamID string) error {
	path := "/team/" + url.PathEscape(teamID) + "/leave"
	return c.do(ctx, http.MethodPost, path, token, nil, nil)
}
