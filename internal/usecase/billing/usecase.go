package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lavizaismail/hostelhub/internal/domain/fault"
	domainPayment "github.com/lavizaismail/hostelhub/internal/domain/payment"
	domainUser "github.com/lavizaismail/hostelhub/internal/domain/user"
	"github.com/lavizaismail/hostelhub/internal/domain/uow"
	ucAllocation "github.com/lavizaismail/hostelhub/internal/usecase/allocation"
	"github.com/lavizaismail/hostelhub/internal/usecase/dispatch"

	"gorm.io/gorm"
)

type Usecase struct {
	uow        uow.UnitOfWork
	dispatcher *dispatch.Dispatcher
}

func NewUsecase(tx uow.UnitOfWork, d *dispatch.Dispatcher) *Usecase {
	return &Usecase{uow: tx, dispatcher: d}
}

// SubmitEvidence records proof of payment and hands the bill to the
// accountants. All evidence fields must be present; the validation error
// names the missing ones so the student can fix the form in one pass.
func (u *Usecase) SubmitEvidence(ctx context.Context, in EvidenceInput) (*PaymentDTO, error) {
	var missing []string
	if strings.TrimSpace(in.TransactionID) == "" {
		missing = append(missing, "transaction_id")
	}
	if strings.TrimSpace(in.PayerName) == "" {
		missing = append(missing, "payer_name")
	}
	if strings.TrimSpace(in.BankName) == "" {
		missing = append(missing, "bank_name")
	}
	if strings.TrimSpace(in.PaidDate) == "" {
		missing = append(missing, "paid_date")
	}
	if strings.TrimSpace(in.PaidTime) == "" {
		missing = append(missing, "paid_time")
	}
	if len(missing) > 0 {
		return nil, fault.Validation("missing required evidence fields", missing...)
	}

	paidDate, err := time.Parse("2006-01-02", in.PaidDate)
	if err != nil {
		return nil, fault.Validation("paid_date must be formatted YYYY-MM-DD", "paid_date")
	}
	if _, err := time.Parse("15:04", in.PaidTime); err != nil {
		return nil, fault.Validation("paid_time must be formatted HH:MM", "paid_time")
	}

	var dto *PaymentDTO
	out := &dispatch.Outbox{}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByIDForUpdate(ctx, in.PaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("payment %d not found", in.PaymentID)
			}
			return err
		}
		if p.StudentID != in.StudentID {
			return fault.Conflict("payment %d does not belong to student %d", p.ID, in.StudentID)
		}
		if !p.Status.CanTransition(domainPayment.StatusPaid) {
			return fault.Conflict("payment is %s, expected pending", p.Status)
		}

		p.TransactionID = strings.TrimSpace(in.TransactionID)
		p.PayerName = strings.TrimSpace(in.PayerName)
		p.BankName = strings.TrimSpace(in.BankName)
		p.PaidDate = &paidDate
		p.PaidTime = in.PaidTime
		p.Method = strings.TrimSpace(in.Method)
		if p.Method == "" {
			p.Method = "Online"
		}
		p.Status = domainPayment.StatusPaid
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}

		st, err := r.Students.GetByID(ctx, p.StudentID)
		if err != nil {
			return err
		}
		accountants, err := r.Users.FindActiveByRole(ctx, domainUser.RoleAccountant)
		if err != nil {
			return err
		}
		for _, acc := range accountants {
			out.Notify(acc.ID, "New payment submitted",
				fmt.Sprintf("Payment of %.2f submitted by %s (TXN: %s).", p.Amount, st.FullName, p.TransactionID),
				"info", "/accountant/pending-payments")
		}
		out.Record(st.UserID, "payment_submitted", "payment", p.ID,
			"student %s submitted evidence for %.2f, txn %s", st.RollNumber, p.Amount, p.TransactionID)

		dto = toPaymentDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// Verify settles the bill and activates the matching allocation in the same
// transaction: both commit or both roll back. Losing the last-slot race
// leaves the payment at paid, the allocation at pending_payment, and raises
// an operational alert for manual remediation; there is no automatic refund.
func (u *Usecase) Verify(ctx context.Context, in VerifyInput) (*VerifyResult, error) {
	var result *VerifyResult
	out := &dispatch.Outbox{}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByIDForUpdate(ctx, in.PaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("payment %d not found", in.PaymentID)
			}
			return err
		}
		if !p.Status.CanTransition(domainPayment.StatusVerified) {
			return fault.Conflict("payment is %s, expected paid", p.Status)
		}

		now := time.Now().UTC()
		p.Status = domainPayment.StatusVerified
		p.VerifiedBy = &in.AccountantID
		p.VerificationDate = &now
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}

		a, rm, err := ucAllocation.ActivateOnPaymentVerified(ctx, r, p.StudentID)
		if err != nil {
			return err
		}

		st, err := r.Students.GetByID(ctx, p.StudentID)
		if err != nil {
			return err
		}
		out.Notify(st.UserID, "Payment verified, room allocated",
			fmt.Sprintf("Your payment of %.2f has been verified and room %s has been allocated to you.", p.Amount, rm.Label()),
			"success", "/student/my-room")
		out.Record(in.AccountantID, "payment_verified", "payment", p.ID,
			"verified %.2f from student %s, activated allocation %d in room %s", p.Amount, st.RollNumber, a.ID, rm.Label())

		result = &VerifyResult{
			Payment:          *toPaymentDTO(p),
			AllocationID:     a.ID,
			AllocationStatus: string(a.Status),
			Room:             rm.Label(),
			RoomOccupancy:    rm.CurrentOccupancy,
			RoomCapacity:     rm.Capacity,
		}
		return nil
	})
	if err != nil {
		if fault.IsKind(err, fault.KindRoomFull) {
			log.Printf("ALERT: verification of payment %d rolled back, %v; manual remediation required", in.PaymentID, err)
		}
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return result, nil
}

// Reject sends a submitted payment back to pending with its evidence cleared
// so the student can resubmit. The allocation is untouched.
func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*PaymentDTO, error) {
	var dto *PaymentDTO
	out := &dispatch.Outbox{}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = "Invalid payment details"
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByIDForUpdate(ctx, in.PaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("payment %d not found", in.PaymentID)
			}
			return err
		}
		if !p.Status.CanTransition(domainPayment.StatusPending) {
			return fault.Conflict("payment is %s, expected paid", p.Status)
		}

		p.Status = domainPayment.StatusPending
		p.ClearEvidence()
		p.RejectionReason = reason
		if err := r.Payments.Save(ctx, p); err != nil {
			return err
		}

		st, err := r.Students.GetByID(ctx, p.StudentID)
		if err != nil {
			return err
		}
		out.Notify(st.UserID, "Payment rejected",
			fmt.Sprintf("Your payment submission was rejected. Reason: %s. Please resubmit correct details.", reason),
			"danger", "/student/payments")
		out.Record(in.AccountantID, "payment_rejected", "payment", p.ID,
			"rejected submission from student %s: %s", st.RollNumber, reason)

		dto = toPaymentDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// Get returns a single payment, for read endpoints.
func (u *Usecase) Get(ctx context.Context, paymentID uint) (*PaymentDTO, error) {
	var dto *PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("payment %d not found", paymentID)
			}
			return err
		}
		dto = toPaymentDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toPaymentDTO(p *domainPayment.Payment) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:       p.ID,
		AllocationID:    p.AllocationID,
		StudentID:       p.StudentID,
		Amount:          p.Amount,
		Status:          string(p.Status),
		TransactionID:   p.TransactionID,
		PayerName:       p.PayerName,
		BankName:        p.BankName,
		PaidDate:        p.PaidDate,
		PaidTime:        p.PaidTime,
		VerifiedBy:      p.VerifiedBy,
		VerifiedAt:      p.VerificationDate,
		RejectionReason: p.RejectionReason,
	}
}
