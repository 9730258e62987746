package navstack

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a transient snackbar message. Each one expires on its own
// timer, independent of the others in the queue.
type Notification struct {
	ID              uuid.UUID
	Message         string
	ExpandedMessage string        // Optional detail shown when the stack is expanded; empty if none
	Duration        time.Duration // Time from creation until automatic dismissal
	CreatedAt       time.Time
}

// Expandable reports whether the notification carries an expanded message.
func (n Notification) Expandable() bool {
	return n.ExpandedMessage != ""
}

// ExpiresAt returns when the notification is dismissed automatically.
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Duration)
}

// NotificationQueue holds live notifications, oldest first.
type NotificationQueue []Notification

// Find returns the notification with the given ID.
func (q NotificationQueue) Find(id uuid.UUID) (Notification, bool) {
	for _, n := range q {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// Without returns a new queue minus the notification with the given ID, and
// whether it was present. Removing an absent ID returns q unchanged.
func (q NotificationQueue) Without(id uuid.UUID) (NotificationQueue, bool) {
	for i, n := range q {
		if n.ID == id {
			out := make(NotificationQueue, 0, len(q)-1)
			out = append(out, q[:i]...)
			return append(out, q[i+1:]...), true
		}
	}
	return q, false
}
