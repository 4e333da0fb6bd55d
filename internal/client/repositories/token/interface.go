// Package token persists the bearer token for the current device: a single
// value under a fixed key in a local key-value store. No expiry, no
// encryption, no multi-token support.
package token

import "context"

// Store reads, writes, and clears the persisted bearer token.
//
// Absence is a valid non-error state: Read returns ("", nil) when no token
// has been stored.
type Store interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
