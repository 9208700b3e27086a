// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnauthorized marks a 401 from any endpoint. By the time callers see
	// it, the pipeline has already torn the session down.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable marks transport failures: connection refused, DNS
	// failure, deadline exceeded.
	ErrUnavailable = errors.New("server unavailable")
)
