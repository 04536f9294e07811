package mysql

import (
	"context"
	"errors"
	"testing"

	notifDomain "github.com/lavizaismail/hostelhub/internal/domain/notification"

	"gorm.io/gorm"
)

func TestNotificationCreateAndFindByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	for _, n := range []*notifDomain.Notification{
		{UserID: 1, Title: "Room Approved", Message: "Your allocation was approved.", Type: "success"},
		{UserID: 1, Title: "Payment Due", Message: "Submit your payment evidence.", Type: "warning"},
		{UserID: 2, Title: "New Complaint", Message: "A complaint was lodged.", Type: "info"},
	} {
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.FindByUserID(ctx, 1)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications for user 1, got %d", len(got))
	}
	for _, n := range got {
		if n.UserID != 1 {
			t.Errorf("notification for wrong user: %+v", n)
		}
		if n.IsRead {
			t.Errorf("new notification should be unread: %+v", n)
		}
	}
}

func TestNotificationMarkRead(t *testing.T) {
	db := openTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := &notifDomain.Notification{UserID: 5, Title: "Hello", Message: "There.", Type: "info"}
	if err := repo.Create(ctx, n); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.MarkRead(ctx, n.ID, 5); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	got, err := repo.FindByUserID(ctx, 5)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(got) != 1 || !got[0].IsRead {
		t.Fatalf("notification not marked read: %+v", got)
	}

	// Another user's id must not flip someone else's notification.
	if err := repo.MarkRead(ctx, n.ID, 6); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for wrong owner, got %v", err)
	}
	if err := repo.MarkRead(ctx, 999, 5); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for missing id, got %v", err)
	}
}
