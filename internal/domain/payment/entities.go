package payment

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusVerified Status = "verified"
)

// pending → paid → verified, with paid → pending on an accountant reject so
// the student can resubmit. verified is terminal: financial fields freeze.
var transitions = map[Status][]Status{
	StatusPending: {StatusPaid},
	StatusPaid:    {StatusVerified, StatusPending},
}

func (s Status) CanTransition(to Status) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Payment is created by an approval transition, never by a CRUD form. The
// amount is a snapshot taken at approval time; later rent changes to the room
// do not touch an open bill.
type Payment struct {
	ID           uint    `gorm:"primaryKey;column:paymentid" json:"payment_id"`
	StudentID    uint    `gorm:"column:studentid;not null;index:idx_payments_student_status" json:"student_id"`
	AllocationID uint    `gorm:"column:allocationid;not null;index" json:"allocation_id"`
	Amount       float64 `gorm:"not null" json:"amount"`
	Status       Status  `gorm:"size:20;default:'pending';index:idx_payments_student_status" json:"status"`
	Month        string  `gorm:"size:20" json:"month"`
	Year         int     `json:"year"`

	// Evidence, set only while the payment sits in paid.
	TransactionID string     `gorm:"column:transactionid;size:100" json:"transaction_id,omitempty"`
	PayerName     string     `gorm:"size:100" json:"payer_name,omitempty"`
	BankName      string     `gorm:"size:100" json:"bank_name,omitempty"`
	PaidDate      *time.Time `gorm:"column:payment_date" json:"paid_date,omitempty"`
	PaidTime      string     `gorm:"column:payment_time;size:5" json:"paid_time,omitempty"`
	Method        string     `gorm:"column:paymentmethod;size:50" json:"method,omitempty"`

	// Verification, set only in verified.
	VerifiedBy       *uint      `json:"verified_by,omitempty"`
	VerificationDate *time.Time `json:"verification_date,omitempty"`

	// Set in pending after a reject cycle.
	RejectionReason string `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Payment) TableName() string { return "payments" }

// ClearEvidence wipes every submission field so a rejected payment returns
// to pending with a clean slate for resubmission.
func (p *Payment) ClearEvidence() {
	p.TransactionID = ""
	p.PayerName = ""
	p.BankName = ""
	p.PaidDate = nil
	p.PaidTime = ""
	p.Method = ""
}
