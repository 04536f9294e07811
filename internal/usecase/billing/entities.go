package billing

import "time"

// EvidenceInput carries the student-supplied proof of payment. Every field
// except Method is required before the payment can move to paid.
type EvidenceInput struct {
	StudentID     uint
	PaymentID     uint
	TransactionID string
	PayerName     string
	BankName      string
	PaidDate      string // 2006-01-02
	PaidTime      string // 15:04
	Method        string
}

type VerifyInput struct {
	AccountantID uint
	PaymentID    uint
}

type RejectInput struct {
	AccountantID uint
	PaymentID    uint
	Reason       string
}

type PaymentDTO struct {
	PaymentID       uint       `json:"payment_id"`
	AllocationID    uint       `json:"allocation_id"`
	StudentID       uint       `json:"student_id"`
	Amount          float64    `json:"amount"`
	Status          string     `json:"status"`
	TransactionID   string     `json:"transaction_id,omitempty"`
	PayerName       string     `json:"payer_name,omitempty"`
	BankName        string     `json:"bank_name,omitempty"`
	PaidDate        *time.Time `json:"paid_date,omitempty"`
	PaidTime        string     `json:"paid_time,omitempty"`
	VerifiedBy      *uint      `json:"verified_by,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

// VerifyResult reports the committed verification together with the room
// occupancy change it triggered.
type VerifyResult struct {
	Payment          PaymentDTO `json:"payment"`
	AllocationID     uint       `json:"allocation_id"`
	AllocationStatus string     `json:"allocation_status"`
	Room             string     `json:"room"`
	RoomOccupancy    int        `json:"room_occupancy"`
	RoomCapacity     int        `json:"room_capacity"`
}
