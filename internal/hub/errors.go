package hub

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when connecting to a closed hub.
	ErrClosed = errors.New("hub is closed")
	// ErrUnknownSubscriber is returned for operations on a disconnected subscriber.
	ErrUnknownSubscriber = errors.New("unknown subscriber")
	// ErrPersistenceUnavailable is returned by requests that need storage when none is wired.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)

// SubscriptionError rejects one subscribe or request call; the connection stays open.
type SubscriptionError struct {
	Kind string
	Name string
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}
