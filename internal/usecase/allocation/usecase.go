package allocation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainAllocation "github.com/lavizaismail/hostelhub/internal/domain/allocation"
	"github.com/lavizaismail/hostelhub/internal/domain/fault"
	domainPayment "github.com/lavizaismail/hostelhub/internal/domain/payment"
	domainRoom "github.com/lavizaismail/hostelhub/internal/domain/room"
	domainUser "github.com/lavizaismail/hostelhub/internal/domain/user"
	"github.com/lavizaismail/hostelhub/internal/domain/uow"
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

// RequestRoom opens the allocation workflow for a student. The room row is
// locked for the duration of the transaction so the availability check and
// the duplicate-allocation check cannot race a concurrent request.
func (u *Usecase) RequestRoom(ctx context.Context, in RequestRoomInput) (*AllocationDTO, error) {
	var dto *AllocationDTO
	out := &dispatch.Outbox{}

	err := u.uow.WithinRoomTx(ctx, in.RoomID, func(r uow.Repos, rm *domainRoom.Room) error {
		st, err := r.Students.GetByID(ctx, in.StudentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("student %d not found", in.StudentID)
			}
			return err
		}

		// One non-terminal allocation per student: fail fast, never queue.
		open, err := r.Allocations.GetOpenByStudentID(ctx, st.ID)
		switch {
		case err == nil:
			return fault.Conflict("student %s already has an allocation in state %s", st.RollNumber, open.Status)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if !rm.Accepts(string(st.Gender)) {
			return fault.Conflict("room %s is restricted to %s residents", rm.Label(), rm.Gender)
		}
		if !rm.Available() {
			return fault.Conflict("room %s is not available", rm.Label())
		}

		a := &domainAllocation.RoomAllocation{
			StudentID:   st.ID,
			RoomID:      rm.ID,
			Status:      domainAllocation.StatusPendingApproval,
			Preferences: strings.TrimSpace(in.Preferences),
			RequestDate: time.Now().UTC(),
		}
		if err := r.Allocations.Create(ctx, a); err != nil {
			return err
		}

		wardens, err := r.Users.FindActiveByRole(ctx, domainUser.RoleWarden)
		if err != nil {
			return err
		}
		for _, w := range wardens {
			out.Notify(w.ID, "New room request",
				fmt.Sprintf("New room request from %s for room %s.", st.FullName, rm.Label()),
				"info", "/warden/pending-requests")
		}
		out.Record(st.UserID, "room_requested", "allocation", a.ID,
			"student %s requested room %s", st.RollNumber, rm.Label())

		dto = toAllocationDTO(a, rm)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// Approve moves a request to pending_payment and bills the student once:
// monthly rent plus a two-month security deposit, snapshotted at approval
// time. A pre-existing pending bill for the student makes the retried
// approval a soft no-op that returns the existing bill.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*ApproveResult, error) {
	var result *ApproveResult
	out := &dispatch.Outbox{}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Allocations.GetByIDForUpdate(ctx, in.AllocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("allocation %d not found", in.AllocationID)
			}
			return err
		}

		rm, err := r.Rooms.GetByID(ctx, a.RoomID)
		if err != nil {
			return err
		}

		existing, err := r.Payments.GetPendingByStudentID(ctx, a.StudentID)
		if err == nil {
			// Retried approval click: report the bill already created.
			result = &ApproveResult{
				Allocation: *toAllocationDTO(a, rm),
				Bill:       toBillDTO(existing),
			}
			return fault.Duplicate("a pending payment already exists for this student")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if !a.Status.CanTransition(domainAllocation.StatusPendingPayment) {
			return fault.Conflict("allocation is %s, expected pending_approval", a.Status)
		}

		rent := rm.MonthlyRent
		now := time.Now().UTC()
		p := &domainPayment.Payment{
			StudentID:    a.StudentID,
			AllocationID: a.ID,
			Amount:       rent * 3,
			Status:       domainPayment.StatusPending,
			Month:        now.Format("January"),
			Year:         now.Year(),
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		a.Status = domainAllocation.StatusPendingPayment
		if err := r.Allocations.Save(ctx, a); err != nil {
			return err
		}

		st, err := r.Students.GetByID(ctx, a.StudentID)
		if err != nil {
			return err
		}
		out.Notify(st.UserID, "Room request approved",
			fmt.Sprintf("Your room request for %s has been approved. Please submit payment details of %.2f (%.2f rent + %.2f security deposit).",
				rm.Label(), p.Amount, rent, rent*2),
			"success", "/student/payments")
		out.Record(in.WardenID, "allocation_approved", "allocation", a.ID,
			"approved request of student %s for room %s, billed %.2f", st.RollNumber, rm.Label(), p.Amount)

		result = &ApproveResult{
			Allocation: *toAllocationDTO(a, rm),
			Bill:       toBillDTO(p),
		}
		return nil
	})
	if err != nil {
		if fault.IsKind(err, fault.KindDuplicate) {
			// Nothing was written; the caller still gets the existing bill.
			return result, err
		}
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return result, nil
}

// Reject is the terminal side-exit from pending_approval.
func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*AllocationDTO, error) {
	var dto *AllocationDTO
	out := &dispatch.Outbox{}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = "No reason provided"
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Allocations.GetByIDForUpdate(ctx, in.AllocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("allocation %d not found", in.AllocationID)
			}
			return err
		}
		if !a.Status.CanTransition(domainAllocation.StatusRejected) {
			return fault.Conflict("allocation is %s, expected pending_approval", a.Status)
		}

		a.Status = domainAllocation.StatusRejected
		a.RejectionReason = reason
		if err := r.Allocations.Save(ctx, a); err != nil {
			return err
		}

		rm, err := r.Rooms.GetByID(ctx, a.RoomID)
		if err != nil {
			return err
		}
		st, err := r.Students.GetByID(ctx, a.StudentID)
		if err != nil {
			return err
		}
		out.Notify(st.UserID, "Room request rejected",
			fmt.Sprintf("Your room request for %s was rejected. Reason: %s", rm.Label(), reason),
			"danger", "/student/room-request")
		out.Record(in.WardenID, "allocation_rejected", "allocation", a.ID,
			"rejected request of student %s: %s", st.RollNumber, reason)

		dto = toAllocationDTO(a, rm)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// Checkout ends an active tenancy and releases the slot.
func (u *Usecase) Checkout(ctx context.Context, in CheckoutInput) (*AllocationDTO, error) {
	var dto *AllocationDTO
	out := &dispatch.Outbox{}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Allocations.GetByIDForUpdate(ctx, in.AllocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("allocation %d not found", in.AllocationID)
			}
			return err
		}
		if !a.Status.CanTransition(domainAllocation.StatusCheckedOut) {
			return fault.Conflict("allocation is %s, expected active", a.Status)
		}

		rm, err := r.Rooms.GetByIDForUpdate(ctx, a.RoomID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		a.Status = domainAllocation.StatusCheckedOut
		a.CheckoutDate = &now
		if err := r.Allocations.Save(ctx, a); err != nil {
			return err
		}

		if rm.CurrentOccupancy > 0 {
			rm.CurrentOccupancy--
		}
		if rm.CurrentOccupancy == 0 && rm.Status == domainRoom.StatusOccupied {
			rm.Status = domainRoom.StatusVacant
		}
		if err := r.Rooms.Save(ctx, rm); err != nil {
			return err
		}

		st, err := r.Students.GetByID(ctx, a.StudentID)
		if err != nil {
			return err
		}
		out.Notify(st.UserID, "Checked out",
			fmt.Sprintf("Your tenancy of room %s has ended.", rm.Label()),
			"info", "/student/dashboard")
		out.Record(in.WardenID, "allocation_checked_out", "allocation", a.ID,
			"student %s checked out of room %s", st.RollNumber, rm.Label())

		dto = toAllocationDTO(a, rm)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// Get returns the allocation with its room label, for read endpoints.
func (u *Usecase) Get(ctx context.Context, allocationID uint) (*AllocationDTO, error) {
	var dto *AllocationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Allocations.GetByID(ctx, allocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("allocation %d not found", allocationID)
			}
			return err
		}
		rm, err := r.Rooms.GetByID(ctx, a.RoomID)
		if err != nil {
			return err
		}
		dto = toAllocationDTO(a, rm)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ActivateOnPaymentVerified moves the student's pending_payment allocation to
// active and claims a room slot. It runs inside the caller's transaction
// (payment verification) so both transitions commit or roll back together.
// Capacity is re-checked on the locked room row immediately before the
// increment; losing that race surfaces as a RoomFull fault and nothing
// commits.
func ActivateOnPaymentVerified(ctx context.Context, r uow.Repos, studentID uint) (*domainAllocation.RoomAllocation, *domainRoom.Room, error) {
	a, err := r.Allocations.GetByStudentIDAndStatusForUpdate(ctx, studentID, domainAllocation.StatusPendingPayment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fault.Conflict("no allocation awaiting payment for student %d", studentID)
		}
		return nil, nil, err
	}

	rm, err := r.Rooms.GetByIDForUpdate(ctx, a.RoomID)
	if err != nil {
		return nil, nil, err
	}
	if rm.CurrentOccupancy >= rm.Capacity {
		return nil, nil, fault.RoomFull("room %s has no free slot left", rm.Label())
	}

	now := time.Now().UTC()
	a.Status = domainAllocation.StatusActive
	a.AllocationDate = &now
	if err := r.Allocations.Save(ctx, a); err != nil {
		return nil, nil, err
	}

	rm.CurrentOccupancy++
	rm.Status = domainRoom.StatusOccupied
	if err := r.Rooms.Save(ctx, rm); err != nil {
		return nil, nil, err
	}
	return a, rm, nil
}

func toAllocationDTO(a *domainAllocation.RoomAllocation, rm *domainRoom.Room) *AllocationDTO {
	return &AllocationDTO{
		AllocationID:    a.ID,
		StudentID:       a.StudentID,
		RoomID:          a.RoomID,
		Room:            rm.Label(),
		Status:          string(a.Status),
		RequestDate:     a.RequestDate,
		AllocationDate:  a.AllocationDate,
		CheckoutDate:    a.CheckoutDate,
		RejectionReason: a.RejectionReason,
	}
}

func toBillDTO(p *domainPayment.Payment) BillDTO {
	rent := p.Amount / 3
	return BillDTO{
		PaymentID:    p.ID,
		AllocationID: p.AllocationID,
		StudentID:    p.StudentID,
		Amount:       p.Amount,
		Rent:         rent,
		Deposit:      p.Amount - rent,
		Status:       string(p.Status),
		Month:        p.Month,
		Year:         p.Year,
	}
}
