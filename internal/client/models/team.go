package models

// Team roles known to gate edit capability. The server may return other
// viewer-equivalent roles; anything outside this set is read-only.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Team is a band/organization unit. Role is the current user's role within
// the team and may be empty on embedded copies.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CanEdit reports whether the user's role within the team allows editing
// events.
func (t Team) CanEdit() bool {
	switch t.Role {
	case RoleOwner, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// TeamInvitation is a pending invite to join a team.
type TeamInvitation struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Team      *Team  `json:"team,omitempty"`
}
