package receipt

import (
	"context"
	"errors"
	"time"

	"github.com/lavizaismail/hostelhub/internal/domain/fault"
	domainPayment "github.com/lavizaismail/hostelhub/internal/domain/payment"
	"github.com/lavizaismail/hostelhub/internal/domain/uow"
	"github.com/lavizaismail/hostelhub/pkg/id"

	"gorm.io/gorm"
)

// Receipt is the document produced for a settled bill. Financial fields are
// a read of the frozen verified payment; rendering (PDF or otherwise)
// belongs to the surrounding layer.
type Receipt struct {
	Number        string     `json:"number"`
	PaymentID     uint       `json:"payment_id"`
	StudentName   string     `json:"student_name"`
	RollNumber    string     `json:"roll_number"`
	Room          string     `json:"room"`
	Amount        float64    `json:"amount"`
	Rent          float64    `json:"rent"`
	Deposit       float64    `json:"deposit"`
	TransactionID string     `json:"transaction_id"`
	BankName      string     `json:"bank_name"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	IssuedAt      time.Time  `json:"issued_at"`
}

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Generate issues a receipt for the student's own verified payment. Requests
// for any other payment state are rejected, never silently redirected.
func (u *Usecase) Generate(ctx context.Context, studentID, paymentID uint) (*Receipt, error) {
	var rcpt *Receipt

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("payment %d not found", paymentID)
			}
			return err
		}
		if p.StudentID != studentID {
			return fault.Conflict("payment %d does not belong to student %d", p.ID, studentID)
		}
		if p.Status != domainPayment.StatusVerified {
			return fault.Conflict("receipts are only issued for verified payments, payment is %s", p.Status)
		}

		st, err := r.Students.GetByID(ctx, p.StudentID)
		if err != nil {
			return err
		}
		a, err := r.Allocations.GetByID(ctx, p.AllocationID)
		if err != nil {
			return err
		}
		rm, err := r.Rooms.GetByID(ctx, a.RoomID)
		if err != nil {
			return err
		}

		rent := p.Amount / 3
		rcpt = &Receipt{
			Number:        id.NewID32(),
			PaymentID:     p.ID,
			StudentName:   st.FullName,
			RollNumber:    st.RollNumber,
			Room:          rm.Label(),
			Amount:        p.Amount,
			Rent:          rent,
			Deposit:       p.Amount - rent,
			TransactionID: p.TransactionID,
			BankName:      p.BankName,
			PaidDate:      p.PaidDate,
			VerifiedAt:    p.VerificationDate,
			IssuedAt:      time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rcpt, nil
}
