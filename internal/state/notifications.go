package state

import (
	"time"

	"github.com/mssbox/blindboxctl/internal/models"
)

// Notify appends a transient message to the queue and schedules its removal
// after the configured delay. The returned id can be used to dismiss it
// early; the scheduled removal is cancelled on manual dismissal, so no timer
// ever fires for an entry that is already gone.
func (c *Container) Notify(message string, kind models.NotificationKind) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notifyLocked(message, kind)
}

func (c *Container) notifyLocked(message string, kind models.NotificationKind) int64 {
	id := c.nextIDLocked()
	c.notifications = append(c.notifications, models.Notification{
		ID:      id,
		Message: message,
		Kind:    kind,
	})
	c.timers[id] = time.AfterFunc(c.ttl, func() { c.expire(id) })
	return id
}

// nextIDLocked produces time-based ids that remain strictly increasing even
// when two notifications land within the same millisecond.
func (c *Container) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}

// Dismiss removes the notification with the given id immediately. Dismissing
// an id that already expired (or never existed) is a no-op.
func (c *Container) Dismiss(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	c.removeLocked(id)
}

// expire is the auto-removal path driven by the per-notification timer.
func (c *Container) expire(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.timers, id)
	c.removeLocked(id)
}

// removeLocked deletes by id, preserving the order of the survivors. Removal
// is keyed strictly by id so a timer can never take out a newer entry.
func (c *Container) removeLocked(id int64) {
	for i, n := range c.notifications {
		if n.ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return
		}
	}
}

// Notifications returns the live notifications in insertion order.
func (c *Container) Notifications() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}
