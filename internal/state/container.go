// Package state holds the process-wide application state: the authenticated
// user, the theme preference and the notification queue. The Container is the
// sole mutator of authentication state; the session store is its durable side
// channel. It is constructed once at startup and passed by reference to every
// consumer.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/mssbox/blindboxctl/internal/logging"
	"github.com/mssbox/blindboxctl/internal/models"
	"github.com/mssbox/blindboxctl/internal/storage"
)

const (
	msgLoggedIn       = "Successfully logged in!"
	msgLoggedOut      = "Successfully logged out!"
	msgSessionExpired = "Session expired, please log in again."
)

// Container is the application state container. All methods are safe for
// concurrent use; the original single-threaded semantics are preserved by
// serializing every mutation behind one mutex.
type Container struct {
	mu    sync.Mutex
	store storage.Store
	log   logging.Logger
	ttl   time.Duration

	user  *models.User
	theme models.Theme

	notifications []models.Notification
	timers        map[int64]*time.Timer
	lastID        int64
}

// New constructs the Container and hydrates the user record and theme
// preference from the session store. The token is deliberately NOT hydrated:
// it lives only in the store and is read lazily by the HTTP pipeline, so
// authentication state stays partially external and survives restarts.
//
// A token found without a user record is an orphan (neither half alone
// implies authentication) and is cleared so the store never carries half a
// session.
func New(ctx context.Context, store storage.Store, log logging.Logger, notifyTTL time.Duration) *Container {
	c := &Container{
		store:  store,
		log:    log,
		ttl:    notifyTTL,
		theme:  models.DefaultTheme,
		timers: make(map[int64]*time.Timer),
	}

	if raw, ok, _ := store.Get(ctx, storage.KeyUser); ok {
		if u, err := models.DecodeUser(raw); err == nil {
			c.user = &u
		} else {
			log.Warn(ctx, "stored user record is corrupt, discarding", "error", err)
			_ = store.Delete(ctx, storage.KeyUser)
		}
	}

	if raw, ok, _ := store.Get(ctx, storage.KeyTheme); ok {
		c.theme = models.ParseTheme(raw)
	}

	if c.user == nil {
		if _, ok, _ := store.Get(ctx, storage.KeyToken); ok {
			log.Warn(ctx, "orphaned token found without user record, clearing")
			_ = store.Delete(ctx, storage.KeyToken)
		}
	}

	return c
}

// Login commits a new session atomically: token and user record are
// persisted together, then the user becomes current and a success
// notification is enqueued. There is no window where one half of the session
// exists without the other.
func (c *Container) Login(ctx context.Context, token string, user models.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Set(ctx, storage.KeyToken, token); err != nil {
		return err
	}
	encoded, err := user.Encode()
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, storage.KeyUser, encoded); err != nil {
		// Roll the token back rather than leave half a session behind.
		_ = c.store.Delete(ctx, storage.KeyToken)
		return err
	}

	c.user = &user
	c.log.Info(ctx, "logged in", "email", user.Email, "admin", user.IsAdmin())
	c.notifyLocked(msgLoggedIn, models.NotifySuccess)
	return nil
}

// Logout clears the session from memory and storage. Calling it with no
// session present is a safe no-op apart from the notification.
func (c *Container) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearSessionLocked(ctx)
	c.log.Info(ctx, "logged out")
	c.notifyLocked(msgLoggedOut, models.NotifyInfo)
}

// ExpireSession is the forced-logout path taken when any call returns 401.
// Unlike Logout it reports the teardown as an error notification.
func (c *Container) ExpireSession(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearSessionLocked(ctx)
	c.notifyLocked(msgSessionExpired, models.NotifyError)
}

func (c *Container) clearSessionLocked(ctx context.Context) {
	c.user = nil
	_ = c.store.Delete(ctx, storage.KeyToken)
	_ = c.store.Delete(ctx, storage.KeyUser)
}

// CurrentUser returns the current user record, if any.
func (c *Container) CurrentUser() (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return models.User{}, false
	}
	return *c.user, true
}

// IsAuthenticated reports whether a session is valid: a non-empty token in
// the STORE and a user record in MEMORY, simultaneously. Neither alone
// implies authentication, and the conjunction is re-evaluated on every call
// rather than cached.
func (c *Container) IsAuthenticated(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return false
	}
	token, ok, _ := c.store.Get(ctx, storage.KeyToken)
	return ok && token != ""
}

// IsAdmin reports whether a user is present and holds the elevated role.
// A stale token with no user record never makes this true.
func (c *Container) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil && c.user.IsAdmin()
}

// CurrentTheme returns the active theme preference.
func (c *Container) CurrentTheme() models.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// ToggleTheme flips the theme, persists the new value and returns it. No
// notification is raised.
func (c *Container) ToggleTheme(ctx context.Context) models.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.theme = c.theme.Flip()
	_ = c.store.Set(ctx, storage.KeyTheme, string(c.theme))
	return c.theme
}

// Close cancels all outstanding notification timers.
func (c *Container) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
}
