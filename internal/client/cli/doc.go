// Package cli provides the interactive RoadCase command-line client.
//
// It wires configuration, the persisted token store, API services, and an
// interactive REPL mirroring the mobile app's screens. Typical flow:
// rehydrate the persisted session once at startup, then execute user
// commands behind a route guard that redirects between the auth screens
// and the show list as the session state changes.
//
// Key features:
//   - Login / Register (with first-band onboarding) / Logout
//   - Show list, show detail, new show wizard, delete
//   - Band list, band selection ("All Bands"), invitations, leave
//   - Settings: whoami, account deactivation with double confirmation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Guard, and runREPL for details.
package cli
