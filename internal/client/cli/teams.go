package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/roadcase/roadcase-cli/internal/client/models"
)

// Bands refreshes and lists the user's bands, marking the active filter.
func (a *App) Bands(ctx context.Context) error {
	if err := a.events.FetchTeams(ctx); err != nil {
		fmt.Println("Could not load bands:", a.events.Err())
		return err
	}

	teams := a.events.Teams()
	if len(teams) == 0 {
		fmt.Println("No bands yet. Use 'newband' to create one.")
		return nil
	}

	selected := a.events.SelectedTeam()
	for _, t := range teams {
		marker := " "
		if selected != nil && selected.ID == t.ID {
			marker = "*"
		}
		fmt.Printf(" %s %s (%s, id %s)\n", marker, t.Name, t.Role, t.ID)
	}
	if selected == nil {
		fmt.Println("Active filter: All Bands")
	}
	return nil
}

// SelectBand sets the active band filter. Entering "all" clears the
// filter so every band's shows are listed.
func (a *App) SelectBand(ctx context.Context) error {
	id, err := getSimpleText(a.reader, `Enter band id ("all" for every band)`, os.Stdout)
	if err != nil {
		return err
	}

	if strings.EqualFold(id, "all") || id == "" {
		a.events.SelectTeam(nil)
		fmt.Println("Showing All Bands.")
		return nil
	}

	for _, t := range a.events.Teams() {
		if t.ID == id {
			a.events.SelectTeam(&t)
			fmt.Printf("Active band: %s\n", t.Name)
			return nil
		}
	}

	fmt.Println("No band with that id. Use 'bands' to list them.")
	return nil
}

// CreateBand creates a new band for the current account and refreshes
// the band list so it becomes selectable right away.
func (a *App) CreateBand(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter band name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println("Band name is required.")
		return nil
	}

	if err := a.sessions.CreateTeam(ctx, name); err != nil {
		fmt.Println("Could not create band:", err.Error())
		return err
	}

	if err := a.events.FetchTeams(ctx); err != nil {
		a.log.Warn(ctx, "team fetch after creation failed", "error", err)
	}
	fmt.Printf("Band %q created.\n", name)
	return nil
}

// Invitations lists the pending invitations for the current account.
func (a *App) Invitations(ctx context.Context) error {
	invitations, err := a.events.Invitations(ctx)
	if err != nil {
		fmt.Println("Could not load invitations:", err.Error())
		return err
	}

	if len(invitations) == 0 {
		fmt.Println("No pending invitations.")
		return nil
	}

	for _, inv := range invitations {
		band := inv.TeamID
		if inv.Team != nil {
			band = inv.Team.Name
		}
		fmt.Printf("  %s invites %s as %s (id %s)\n", band, inv.Email, inv.Role, inv.ID)
	}
	return nil
}

// Invite sends a band invitation to an email address. Only members whose
// role allows editing may invite.
func (a *App) Invite(ctx context.Context) error {
	team := a.events.SelectedTeam()
	if team == nil {
		fmt.Println("Select a band first ('band').")
		return nil
	}
	if !team.CanEdit() {
		fmt.Println("Your role does not allow inviting members.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email to invite", os.Stdout)
	if err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Role (admin/editor)", os.Stdout)
	if err != nil {
		return err
	}
	if role == "" {
		role = models.RoleEditor
	}

	if err := a.events.InviteUser(ctx, team.ID, email, role); err != nil {
		fmt.Println("Could not send invitation:", err.Error())
		return err
	}

	fmt.Printf("Invitation sent to %s.\n", email)
	return nil
}

// Revoke deletes a pending invitation by its identifier.
func (a *App) Revoke(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter invitation id to revoke", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.events.DeleteInvitation(ctx, id); err != nil {
		fmt.Println("Could not revoke invitation:", err.Error())
		return err
	}

	fmt.Println("Invitation revoked.")
	return nil
}

// Leave removes the current user from a band after confirmation.
func (a *App) Leave(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter band id to leave", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := getConfirmation(a.reader, "Leave this band?", os.Stdout)
	if err != nil || !ok {
		return err
	}

	if err := a.events.LeaveTeam(ctx, id); err != nil {
		fmt.Println("Could not leave band:", err.Error())
		return err
	}

	fmt.Println("Left the band.")
	return nil
}
