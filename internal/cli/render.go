package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mssbox/blindboxctl/internal/common"
	"github.com/mssbox/blindboxctl/internal/gate"
	"github.com/mssbox/blindboxctl/internal/models"
)

// FlushNotifications prints notifications enqueued since the last flush, in
// insertion order. Entries stay in the queue until they expire or are
// dismissed; only the rendering cursor advances here.
func (a *App) FlushNotifications() {
	for _, n := range a.state.Notifications() {
		if n.ID <= a.lastFlushedID {
			continue
		}
		printlnFn(fmt.Sprintf("[%s] %s", n.Kind, n.Message))
		a.lastFlushedID = n.ID
	}
}

// notifyFailure converts a backend-call error into a notification. The
// backend-provided message is preferred; transport failures degrade to the
// operation-specific fallback. A 401 is skipped entirely because the
// auth-failure hook has already reported the session teardown.
func (a *App) notifyFailure(err error, fallback string) {
	if errors.Is(err, common.ErrUnauthorized) {
		return
	}
	if errors.Is(err, common.ErrUnavailable) {
		a.state.Notify(fallback, models.NotifyError)
		return
	}
	a.state.Notify(err.Error(), models.NotifyError)
}

// navigateToLogin is the unauthenticated redirect: history is replaced so
// the denied page cannot be reached by going back.
func (a *App) navigateToLogin() {
	a.currentPath = gate.LoginPath
	a.history = nil
	printlnFn("Please log in to continue.")
}

// requireAdmin runs the gate for an admin-only action and reports denials
// the same way the admin views do.
func (a *App) requireAdmin(ctx context.Context) bool {
	switch gate.Check(ctx, a.state, true) {
	case gate.DeniedUnauthenticated:
		a.navigateToLogin()
		return false
	case gate.DeniedInsufficientRole:
		printlnFn("Access Denied")
		printlnFn("You need administrator privileges to access this page.")
		return false
	default:
		return true
	}
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
