package cli

import (
	"context"

	"github.com/mssbox/blindboxctl/internal/gate"
)

// Open navigates to a view. Every navigation re-runs the gate; nothing about
// a previous admission is cached.
func (a *App) Open(ctx context.Context, path string) error {
	route := gate.Resolve(path)

	if route.NotFound {
		printlnFn("404: no such page:", route.Path)
		return nil
	}

	if !route.Protected {
		a.navigate(route.Path, true)
		printlnFn("Use 'login' to authenticate.")
		return nil
	}

	switch gate.Check(ctx, a.state, route.AdminOnly) {
	case gate.DeniedUnauthenticated:
		// Redirect to login, replacing history: the denied page must not be
		// reachable by going back.
		a.navigateToLogin()
		return nil

	case gate.DeniedInsufficientRole:
		// Blocking notice; the only recovery is one step back. No redirect to
		// login and no state mutation.
		printlnFn("Access Denied")
		printlnFn("You need administrator privileges to access this page.")
		printlnFn("Use 'back' to return.")
		return nil

	default:
		a.navigate(route.Path, true)
		return a.renderView(ctx, route)
	}
}

// Back pops one step of navigation history, the recovery action offered by a
// role denial.
func (a *App) Back(ctx context.Context) error {
	if len(a.history) == 0 {
		printlnFn("No previous page.")
		return nil
	}
	prev := a.history[len(a.history)-1]
	a.history = a.history[:len(a.history)-1]
	a.currentPath = prev
	return nil
}

func (a *App) navigate(path string, push bool) {
	if push && a.currentPath != path {
		a.history = append(a.history, a.currentPath)
	}
	a.currentPath = path
}

func (a *App) renderView(ctx context.Context, route gate.Route) error {
	switch route.Path {
	case "/":
		printlnFn("MSS BlindBox System: manage brands and blind boxes.")
		return nil
	case "/about":
		printlnFn("blindboxctl, a terminal client for the MSS BlindBox backend.")
		return nil
	case "/blindboxes", "/admin/blindboxes":
		return a.Boxes(ctx)
	case "/admin/brands":
		return a.Brands(ctx)
	case "/admin/dashboard":
		return a.dashboard(ctx)
	default:
		return nil
	}
}
