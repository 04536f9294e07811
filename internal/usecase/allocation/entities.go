package allocation

import "time"

type RequestRoomInput struct {
	StudentID   uint   `json:"student_id"`
	RoomID      uint   `json:"room_id"`
	Preferences string `json:"preferences"`
}

type ApproveInput struct {
	WardenID     uint
	AllocationID uint
}

type RejectInput struct {
	WardenID     uint
	AllocationID uint
	Reason       string
}

type CheckoutInput struct {
	WardenID     uint
	AllocationID uint
}

type AllocationDTO struct {
	AllocationID    uint       `json:"allocation_id"`
	StudentID       uint       `json:"student_id"`
	RoomID          uint       `json:"room_id"`
	Room            string     `json:"room"`
	Status          string     `json:"status"`
	RequestDate     time.Time  `json:"request_date"`
	AllocationDate  *time.Time `json:"allocation_date,omitempty"`
	CheckoutDate    *time.Time `json:"checkout_date,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

// BillDTO describes the payment created by an approval. Rent and Deposit are
// the split behind Amount (rent + 2x rent security deposit).
type BillDTO struct {
	PaymentID    uint    `json:"payment_id"`
	AllocationID uint    `json:"allocation_id"`
	StudentID    uint    `json:"student_id"`
	Amount       float64 `json:"amount"`
	Rent         float64 `json:"rent"`
	Deposit      float64 `json:"deposit"`
	Status       string  `json:"status"`
	Month        string  `json:"month"`
	Year         int     `json:"year"`
}

type ApproveResult struct {
	Allocation AllocationDTO `json:"allocation"`
	Bill       BillDTO       `json:"bill"`
}
