// Package api contains the RoadCase API contract and its HTTP implementation.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, profile, events, teams, and team invitations.
//  2. A concrete JSON-over-HTTPS implementation (see HTTPClient) that sets
//     the bearer Authorization header on authenticated calls, tags every
//     request with an X-Request-ID, and maps response statuses to sentinel
//     errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable (transport failure), ErrUnauthorized
// (401), ErrRequestFailed (any other non-2xx).
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; no operation ever retries.
package api
