package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByUserID(ctx context.Context, userID uint) ([]Notification, error)
	// MarkRead flips is_read on the user's own notification.
	MarkRead(ctx context.Context, id, userID uint) error
}
