package notify

import "errors"

var (
	// ErrNotification wraps every failed staff notification.
	ErrNotification = errors.New("notification failed")
	// ErrQueueFull is reported when the dispatcher queue has no room.
	ErrQueueFull = errors.New("notification queue is full")
	// ErrNotifierNotConfigured is returned by constructors given an empty
	// configuration.
	ErrNotifierNotConfigured = errors.New("notifier is not configured")
)
