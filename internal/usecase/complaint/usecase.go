package complaint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainAllocation "github.com/lavizaismail/hostelhub/internal/domain/allocation"
	domainComplaint "github.com/lavizaismail/hostelhub/internal/domain/complaint"
	"github.com/lavizaismail/hostelhub/internal/domain/fault"
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

// Lodge opens a maintenance ticket. Filing anything requires having engaged
// the housing process (a non-terminal allocation); room complaints further
// require an active allocation and take their location from it.
func (u *Usecase) Lodge(ctx context.Context, in LodgeInput) (*ComplaintDTO, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, fault.Validation("missing required complaint fields", missing...)
	}

	ctype := domainComplaint.Type(in.Type)
	if ctype != domainComplaint.TypeRoom && ctype != domainComplaint.TypeGeneral {
		return nil, fault.Validation("type must be room or general", "type")
	}
	priority := domainComplaint.Priority(in.Priority)
	if priority == "" {
		priority = domainComplaint.PriorityMedium
	}

	var dto *ComplaintDTO
	out := &dispatch.Outbox{}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		st, err := r.Students.GetByID(ctx, in.StudentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("student %d not found", in.StudentID)
			}
			return err
		}

		if _, err := r.Allocations.GetOpenByStudentID(ctx, st.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.Conflict("student %s must request a room before lodging complaints", st.RollNumber)
			}
			return err
		}

		var roomID *uint
		location := strings.TrimSpace(in.Location)
		if ctype == domainComplaint.TypeRoom {
			active, err := r.Allocations.GetByStudentIDAndStatus(ctx, st.ID, domainAllocation.StatusActive)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fault.Conflict("room complaints require an active allocation")
				}
				return err
			}
			rm, err := r.Rooms.GetByID(ctx, active.RoomID)
			if err != nil {
				return err
			}
			roomID = &rm.ID
			location = "Room " + rm.Label()
		} else if location == "" {
			return fault.Validation("location is required for general complaints", "location")
		}

		c := &domainComplaint.Complaint{
			StudentID:   st.ID,
			RoomID:      roomID,
			Title:       strings.TrimSpace(in.Title),
			Type:        ctype,
			Category:    strings.TrimSpace(in.Category),
			Description: strings.TrimSpace(in.Description),
			Location:    location,
			Priority:    priority,
			Status:      domainComplaint.StatusOpen,
			Attachment:  in.Attachment,
		}
		if err := r.Complaints.Create(ctx, c); err != nil {
			return err
		}

		wardens, err := r.Users.FindActiveByRole(ctx, domainUser.RoleWarden)
		if err != nil {
			return err
		}
		for _, w := range wardens {
			out.Notify(w.ID, "New complaint lodged",
				fmt.Sprintf("New %s complaint from %s: %s", c.Category, st.FullName, c.Title),
				"warning", "/warden/complaints")
		}
		out.Record(st.UserID, "complaint_lodged", "complaint", c.ID,
			"student %s lodged %s complaint at %s", st.RollNumber, c.Category, c.Location)

		dto = toComplaintDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// Forward hands an open complaint to maintenance for triage.
func (u *Usecase) Forward(ctx context.Context, in ForwardInput) (*ComplaintDTO, error) {
	var dto *ComplaintDTO
	out := &dispatch.Outbox{}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Complaints.GetByIDForUpdate(ctx, in.ComplaintID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("complaint %d not found", in.ComplaintID)
			}
			return err
		}
		if !c.Status.CanTransition(domainComplaint.StatusForwarded) {
			return fault.Conflict("complaint is %s, expected open", c.Status)
		}

		c.Status = domainComplaint.StatusForwarded
		if err := r.Complaints.Save(ctx, c); err != nil {
			return err
		}

		maint, err := r.Users.FindActiveByRole(ctx, domainUser.RoleMaintenance)
		if err != nil {
			return err
		}
		if len(maint) > 0 {
			out.Notify(maint[0].ID, "Complaint forwarded",
				fmt.Sprintf("Complaint %q (%s) has been forwarded for triage.", c.Title, c.Category),
				"info", "/maintenance/dashboard")
		}
		out.Record(in.WardenID, "complaint_forwarded", "complaint", c.ID,
			"forwarded complaint %q to maintenance", c.Title)

		dto = toComplaintDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// Assign puts an active maintenance user on the ticket. Assignment implies
// work starts, so the complaint moves straight to in_progress.
func (u *Usecase) Assign(ctx context.Context, in AssignInput) (*ComplaintDTO, error) {
	var dto *ComplaintDTO
	out := &dispatch.Outbox{}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		staff, err := r.Users.GetByID(ctx, in.StaffUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("user %d not found", in.StaffUserID)
			}
			return err
		}
		if staff.Role != domainUser.RoleMaintenance || !staff.IsActive {
			return fault.Conflict("assignee must be an active maintenance user")
		}

		c, err := r.Complaints.GetByIDForUpdate(ctx, in.ComplaintID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("complaint %d not found", in.ComplaintID)
			}
			return err
		}
		if !c.Status.CanTransition(domainComplaint.StatusInProgress) {
			return fault.Conflict("complaint is %s, cannot be assigned", c.Status)
		}

		c.AssignedTo = &staff.ID
		c.Status = domainComplaint.StatusInProgress
		if err := r.Complaints.Save(ctx, c); err != nil {
			return err
		}

		out.Notify(staff.ID, "New complaint assigned",
			fmt.Sprintf("You have been assigned complaint #%d: %s", c.ID, c.Title),
			"info", fmt.Sprintf("/maintenance/complaint/%d", c.ID))
		out.Record(in.AdminID, "complaint_assigned", "complaint", c.ID,
			"assigned complaint %q to %s", c.Title, staff.Username)

		dto = toComplaintDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// UpdateStatus advances the ticket from the maintenance side and tells the
// student what changed.
func (u *Usecase) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*ComplaintDTO, error) {
	newStatus := domainComplaint.Status(in.NewStatus)
	switch newStatus {
	case domainComplaint.StatusAssigned, domainComplaint.StatusInProgress, domainComplaint.StatusResolved:
	default:
		return nil, fault.Validation("status must be one of assigned, in_progress, resolved", "status")
	}

	var dto *ComplaintDTO
	out := &dispatch.Outbox{}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Complaints.GetByIDForUpdate(ctx, in.ComplaintID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("complaint %d not found", in.ComplaintID)
			}
			return err
		}
		if !c.Status.CanTransition(newStatus) {
			return fault.Conflict("complaint cannot move from %s to %s", c.Status, newStatus)
		}

		notes := strings.TrimSpace(in.Notes)
		c.Status = newStatus
		if notes != "" {
			c.ResolutionNotes = notes
		}
		if newStatus == domainComplaint.StatusResolved {
			now := time.Now().UTC()
			c.ResolvedAt = &now
		}
		if err := r.Complaints.Save(ctx, c); err != nil {
			return err
		}

		st, err := r.Students.GetByID(ctx, c.StudentID)
		if err != nil {
			return err
		}
		title, message, typ := statusNotification(newStatus, notes)
		out.Notify(st.UserID, title, message, typ, "/student/complaints")
		out.Record(in.StaffID, "complaint_status_updated", "complaint", c.ID,
			"complaint %q moved to %s", c.Title, newStatus)

		dto = toComplaintDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatcher.Flush(ctx, out)
	return dto, nil
}

// Get returns a single complaint, for read endpoints.
func (u *Usecase) Get(ctx context.Context, complaintID uint) (*ComplaintDTO, error) {
	var dto *ComplaintDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Complaints.GetByID(ctx, complaintID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("complaint %d not found", complaintID)
			}
			return err
		}
		dto = toComplaintDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func statusNotification(s domainComplaint.Status, notes string) (title, message, typ string) {
	switch s {
	case domainComplaint.StatusResolved:
		message = "Your complaint has been resolved."
		if notes != "" {
			message += " Resolution: " + notes
		}
		return "Complaint resolved", message, "success"
	case domainComplaint.StatusInProgress:
		message = "Your complaint is now being worked on."
		if notes != "" {
			message += " Update: " + notes
		}
		return "Complaint in progress", message, "info"
	default:
		message = "Your complaint has been assigned."
		if notes != "" {
			message += " Note: " + notes
		}
		return "Complaint assigned", message, "info"
	}
}

func toComplaintDTO(c *domainComplaint.Complaint) *ComplaintDTO {
	return &ComplaintDTO{
		ComplaintID:     c.ID,
		StudentID:       c.StudentID,
		RoomID:          c.RoomID,
		Title:           c.Title,
		Type:            string(c.Type),
		Category:        c.Category,
		Description:     c.Description,
		Location:        c.Location,
		Priority:        string(c.Priority),
		Status:          string(c.Status),
		AssignedTo:      c.AssignedTo,
		ResolvedAt:      c.ResolvedAt,
		ResolutionNotes: c.ResolutionNotes,
		CreatedAt:       c.CreatedAt,
	}
}
