// Package common defines shared constants and sentinel errors used across
// the RoadCase client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Validation errors: client-side required-field checks performed
	// before any request is issued.
	ErrValidation = errors.New("validation error")

	// Authentication errors.
	ErrNotAuthenticated = errors.New("not authenticated")
)
