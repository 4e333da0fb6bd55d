package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	refreshRoute()
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Deactivate(ctx context.Context) error
	Shows(ctx context.Context) error
	Show(ctx context.Context) error
	NewShow(ctx context.Context) error
	DeleteShow(ctx context.Context) error
	Bands(ctx context.Context) error
	SelectBand(ctx context.Context) error
	CreateBand(ctx context.Context) error
	Invitations(ctx context.Context) error
	Invite(ctx context.Context) error
	Revoke(ctx context.Context) error
	Leave(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the RoadCase CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". After every command the route guard is reapplied so
// redirects driven by session changes take effect before the next prompt.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account (then create a first band)
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - (s)hows        — list shows for the active band
//	  - show           — show a single event (interactive ID prompt)
//	  - new            — create a show
//	  - delete         — delete a show
//	  - bands          — list bands
//	  - band           — select the active band (or "all")
//	  - newband        — create a band
//	  - invitations    — list pending invitations
//	  - invite         — invite a user to a band
//	  - revoke         — delete an invitation
//	  - leave          — leave a band
//	  - whoami         — show the signed-in profile
//	  - logout         — sign out
//	  - deactivate     — schedule account deletion
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rc> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (s)hows, show, new, delete, bands, band, newband, invitations, invite, revoke, leave, whoami, logout, deactivate, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "s", "shows", "list":
			_ = a.Shows(ctx)

		case "show":
			_ = a.Show(ctx)

		case "new":
			_ = a.NewShow(ctx)

		case "delete":
			_ = a.DeleteShow(ctx)

		case "bands":
			_ = a.Bands(ctx)

		case "band":
			_ = a.SelectBand(ctx)

		case "newband":
			_ = a.CreateBand(ctx)

		case "invitations", "invites":
			_ = a.Invitations(ctx)

		case "invite":
			_ = a.Invite(ctx)

		case "revoke":
			_ = a.Revoke(ctx)

		case "leave":
			_ = a.Leave(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "deactivate":
			_ = a.Deactivate(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.refreshRoute()
	}
}
