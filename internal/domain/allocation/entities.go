package allocation

import "time"

type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusPendingPayment  Status = "pending_payment"
	StatusActive          Status = "active"
	StatusRejected        Status = "rejected"
	StatusCheckedOut      Status = "checked_out"
)

// transitions is the closed state machine: pending_approval → pending_payment
// → active → checked_out, with the side-exit pending_approval → rejected.
var transitions = map[Status][]Status{
	StatusPendingApproval: {StatusPendingPayment, StatusRejected},
	StatusPendingPayment:  {StatusActive},
	StatusActive:          {StatusCheckedOut},
}

func (s Status) CanTransition(to Status) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Terminal statuses admit no further transitions; a terminal allocation does
// not count against the one-open-allocation-per-student rule.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCheckedOut
}

// NonTerminalStatuses lists the states in which a student is considered to
// hold an allocation. At most one such record may exist per student.
func NonTerminalStatuses() []Status {
	return []Status{StatusPendingApproval, StatusPendingPayment, StatusActive}
}

type RoomAllocation struct {
	ID              uint       `gorm:"primaryKey;column:allocationid" json:"allocation_id"`
	StudentID       uint       `gorm:"column:studentid;not null;index:idx_allocations_student_status" json:"student_id"`
	RoomID          uint       `gorm:"column:roomid;not null;index" json:"room_id"`
	Status          Status     `gorm:"size:20;default:'pending_approval';index:idx_allocations_student_status" json:"status"`
	Preferences     string     `gorm:"type:text" json:"preferences"`
	RequestDate     time.Time  `gorm:"autoCreateTime" json:"request_date"`
	AllocationDate  *time.Time `gorm:"column:allocationdate" json:"allocation_date,omitempty"`
	CheckoutDate    *time.Time `json:"checkout_date,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
}

func (RoomAllocation) TableName() string { return "room_allocations" }
