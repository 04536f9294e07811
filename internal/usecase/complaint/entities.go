package complaint

import "time"

type LodgeInput struct {
	StudentID   uint
	Title       string
	Description string
	Category    string
	Priority    string
	Type        string // "room" or "general"
	Location    string // required for general complaints
	Attachment  string
}

type ForwardInput struct {
	WardenID    uint
	ComplaintID uint
}

type AssignInput struct {
	AdminID     uint
	ComplaintID uint
	StaffUserID uint
}

type UpdateStatusInput struct {
	StaffID     uint
	ComplaintID uint
	NewStatus   string
	Notes       string
}

type ComplaintDTO struct {
	ComplaintID     uint       `json:"complaint_id"`
	StudentID       uint       `json:"student_id"`
	RoomID          *uint      `json:"room_id,omitempty"`
	Title           string     `json:"title"`
	Type            string     `json:"type"`
	Category        string     `json:"category"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	AssignedTo      *uint      `json:"assigned_to,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
