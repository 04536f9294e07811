package notification

import "time"

// Notification is a pure delivery record: create-only, mutated only to flip
// IsRead. Failures to write one never roll back the workflow transition that
// produced it.
type Notification struct {
	ID        uint      `gorm:"primaryKey;column:notifid" json:"notification_id"`
	UserID    uint      `gorm:"column:userid;not null;index" json:"user_id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:20;default:'info'" json:"type"`
	Link      string    `gorm:"size:200" json:"link,omitempty"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
