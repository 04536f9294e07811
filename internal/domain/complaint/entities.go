package complaint

import "time"

type Status string

const (
	StatusOpen       Status = "open"
	StatusForwarded  Status = "forwarded"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// open → forwarded → assigned → in_progress → resolved, plus the direct
// admin-assign shortcuts from open/forwarded. No back-transitions.
var transitions = map[Status][]Status{
	StatusOpen:       {StatusForwarded, StatusAssigned, StatusInProgress},
	StatusForwarded:  {StatusAssigned, StatusInProgress},
	StatusAssigned:   {StatusInProgress, StatusResolved},
	StatusInProgress: {StatusResolved},
}

func (s Status) CanTransition(to Status) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

type Type string

const (
	// TypeRoom complaints require an active allocation; room and location
	// are filled from it.
	TypeRoom Type = "room"
	// TypeGeneral complaints need an explicit location instead.
	TypeGeneral Type = "general"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Complaint struct {
	ID          uint     `gorm:"primaryKey;column:complaintid" json:"complaint_id"`
	StudentID   uint     `gorm:"column:studentid;not null;index" json:"student_id"`
	RoomID      *uint    `gorm:"column:roomid" json:"room_id,omitempty"`
	Title       string   `gorm:"size:200;not null" json:"title"`
	Type        Type     `gorm:"column:complainttype;size:50;not null" json:"type"`
	Category    string   `gorm:"size:50;not null" json:"category"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Location    string   `gorm:"size:200" json:"location"`
	Priority    Priority `gorm:"size:20;default:'medium'" json:"priority"`
	Status      Status   `gorm:"size:20;default:'open';index" json:"status"`
	Attachment  string   `gorm:"size:200" json:"attachment,omitempty"`

	// AssignedTo references the maintenance user working the ticket.
	AssignedTo      *uint      `gorm:"column:assigned_to" json:"assigned_to,omitempty"`
	ResolvedAt      *time.Time `gorm:"column:resolvedat" json:"resolved_at,omitempty"`
	ResolutionNotes string     `gorm:"column:resolutionnotes;type:text" json:"resolution_notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Complaint) TableName() string { return "complaints" }
