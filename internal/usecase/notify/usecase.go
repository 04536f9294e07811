package notify

import (
	"context"
	"errors"

	"github.com/lavizaismail/hostelhub/internal/domain/audit"
	"github.com/lavizaismail/hostelhub/internal/domain/fault"
	"github.com/lavizaismail/hostelhub/internal/domain/notification"

	"gorm.io/gorm"
)

// Usecase serves the read side of the delivery channel: a user's inbox and
// the recent audit trail. Writes happen through the post-commit dispatcher.
type Usecase struct {
	notifications notification.Repository
	audits        audit.Repository
}

func NewUsecase(n notification.Repository, a audit.Repository) *Usecase {
	return &Usecase{notifications: n, audits: a}
}

func (u *Usecase) Inbox(ctx context.Context, userID uint) ([]notification.Notification, error) {
	return u.notifications.FindByUserID(ctx, userID)
}

// MarkRead flips a single notification, scoped to its owner so one user
// cannot mark another user's inbox.
func (u *Usecase) MarkRead(ctx context.Context, notificationID, userID uint) error {
	err := u.notifications.MarkRead(ctx, notificationID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fault.NotFound("notification %d not found for user %d", notificationID, userID)
	}
	return err
}

func (u *Usecase) RecentAudit(ctx context.Context, limit int) ([]audit.Entry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return u.audits.FindRecent(ctx, limit)
}
