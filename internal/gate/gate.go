// Package gate decides, per render, whether the current session may see a
// protected view. The decision is synchronous and pure: no side effects, no
// caching, consulted again on every render since the session can change
// between two renders.
package gate

import "context"

// Decision is the outcome of a gate check.
type Decision int

const (
	// Admitted renders the requested view.
	Admitted Decision = iota

	// DeniedUnauthenticated redirects to the login view, replacing history so
	// the denied page cannot be reached by navigating back.
	DeniedUnauthenticated

	// DeniedInsufficientRole renders a blocking notice whose only recovery is
	// one step back in history. It does not redirect to login.
	DeniedInsufficientRole
)

func (d Decision) String() string {
	switch d {
	case Admitted:
		return "admitted"
	case DeniedUnauthenticated:
		return "denied: unauthenticated"
	case DeniedInsufficientRole:
		return "denied: insufficient role"
	default:
		return "unknown"
	}
}

// Authorizer is the slice of the state container the gate consults.
type Authorizer interface {
	IsAuthenticated(ctx context.Context) bool
	IsAdmin() bool
}

// Check applies the gate rules: authentication first, then the elevated-role
// requirement if the view demands one.
func Check(ctx context.Context, auth Authorizer, requiresAdmin bool) Decision {
	if !auth.IsAuthenticated(ctx) {
		return DeniedUnauthenticated
	}
	if requiresAdmin && !auth.IsAdmin() {
		return DeniedInsufficientRole
	}
	return Admitted
}
