package dispatch

import (
	"context"
	"fmt"
	"log"

	"github.com/lavizaismail/hostelhub/internal/domain/audit"
	"github.com/lavizaismail/hostelhub/internal/domain/notification"
)

// Outbox collects the notifications and audit entries a workflow transition
// wants to emit. The usecase fills it inside the transaction and flushes it
// only after commit, so side-channel failures can never undo a transition.
type Outbox struct {
	notes   []notification.Notification
	entries []audit.Entry
}

func (o *Outbox) Notify(userID uint, title, message, typ, link string) {
	o.notes = append(o.notes, notification.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
		Link:    link,
	})
}

func (o *Outbox) Record(actorID uint, action, entityType string, entityID uint, format string, args ...any) {
	o.entries = append(o.entries, audit.Entry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    fmt.Sprintf(format, args...),
	})
}

type Dispatcher struct {
	notifications notification.Repository
	audits        audit.Repository
}

func NewDispatcher(n notification.Repository, a audit.Repository) *Dispatcher {
	return &Dispatcher{notifications: n, audits: a}
}

// Flush writes the collected events, best-effort. Failures are logged and
// swallowed: delivery is degraded-mode tolerant, not retried here.
func (d *Dispatcher) Flush(ctx context.Context, o *Outbox) {
	if o == nil {
		return
	}
	for i := range o.notes {
		if err := d.notifications.Create(ctx, &o.notes[i]); err != nil {
			log.Printf("dispatch: notification for user %d dropped: %v", o.notes[i].UserID, err)
		}
	}
	for i := range o.entries {
		if err := d.audits.Record(ctx, &o.entries[i]); err != nil {
			log.Printf("dispatch: audit entry %q dropped: %v", o.entries[i].Action, err)
		}
	}
}
