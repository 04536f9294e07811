package audit

import "time"

// Entry is append-only: recorded after a workflow transition commits, never
// mutated or deleted.
type Entry struct {
	ID         uint      `gorm:"primaryKey;column:logid" json:"log_id"`
	ActorID    uint      `gorm:"column:userid;index" json:"actor_id"`
	Action     string    `gorm:"size:100;not null;index" json:"action"`
	EntityType string    `gorm:"size:50" json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	Details    string    `gorm:"type:text" json:"details"`
	Timestamp  time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (Entry) TableName() string { return "audit_logs" }
