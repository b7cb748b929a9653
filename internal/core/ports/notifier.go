package ports

import "context"

// Notification events of interest.
const (
	EventWalkCreated = "walk.created"
	EventWalkJoined  = "walk.joined"
)

// Notification is the payload fanned out to subscribers after a state
// transition of interest.
type Notification struct {
	Event     string `json:"event"`
	Message   string `json:"message"`
	WalkID    string `json:"walk_id"`
	WalkTitle string `json:"walk_title"`
}

// Notifier publishes notifications to interested subscribers. Publish is
// fire-and-forget: implementations must not make the caller's mutation fail,
// and callers only invoke it after the triggering write has durably
// succeeded.
type Notifier interface {
	Publish(ctx context.Context, n Notification) error
}
