package models

// NotificationKind classifies a transient message for rendering.
type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient message shown to the user. IDs are
// millisecond-based and strictly monotonic so that removal by id can never
// hit a different, newer entry.
type Notification struct {
	ID      int64
	Message string
	Kind    NotificationKind
}
