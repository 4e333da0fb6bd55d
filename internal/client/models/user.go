// Package models defines the wire models of the RoadCase API together with
// the read-only derivations the client renders (lineup labels, schedule
// ordering, show-date formatting).
package models

// User is the authenticated account as returned by the profile endpoint.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the authenticated identity plus bearer token held for the
// current run. Owned exclusively by the session service; nil when
// unauthenticated.
type Session struct {
	Token string
	User  User
}
