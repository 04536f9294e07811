package http

import (
	"net/http"

	"github.com/lavizaismail/hostelhub/internal/usecase/complaint"

	"github.com/labstack/echo/v4"
)

type ComplaintHandler struct{ uc *complaint.Usecase }

func NewComplaintHandler(uc *complaint.Usecase) *ComplaintHandler {
	return &ComplaintHandler{uc: uc}
}

type lodgeComplaintReq struct {
	StudentID   uint   `json:"student_id"  validate:"required"`
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required,max=50"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Type        string `json:"type"        validate:"required,oneof=room general"`
	Location    string `json:"location"    validate:"max=200"`
	Attachment  string `json:"attachment"  validate:"max=200"`
}

func (h *ComplaintHandler) Lodge(c echo.Context) error {
	var req lodgeComplaintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Lodge(c.Request().Context(), complaint.LodgeInput{
		StudentID:   req.StudentID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Type:        req.Type,
		Location:    req.Location,
		Attachment:  req.Attachment,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ComplaintHandler) Forward(c echo.Context) error {
	complaintID, ok := parseUintParam(c, "complaint_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid complaint_id path param"})
	}
	warden, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}

	dto, err := h.uc.Forward(c.Request().Context(), complaint.ForwardInput{
		WardenID:    warden,
		ComplaintID: complaintID,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type assignComplaintReq struct {
	StaffUserID uint `json:"staff_user_id" validate:"required"`
}

func (h *ComplaintHandler) Assign(c echo.Context) error {
	complaintID, ok := parseUintParam(c, "complaint_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid complaint_id path param"})
	}
	admin, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}
	var req assignComplaintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Assign(c.Request().Context(), complaint.AssignInput{
		AdminID:     admin,
		ComplaintID: complaintID,
		StaffUserID: req.StaffUserID,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateComplaintStatusReq struct {
	Status string `json:"status" validate:"required,oneof=assigned in_progress resolved"`
	Notes  string `json:"notes"  validate:"max=1000"`
}

func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	complaintID, ok := parseUintParam(c, "complaint_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid complaint_id path param"})
	}
	staff, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}
	var req updateComplaintStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.UpdateStatus(c.Request().Context(), complaint.UpdateStatusInput{
		StaffID:     staff,
		ComplaintID: complaintID,
		NewStatus:   req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ComplaintHandler) Get(c echo.Context) error {
	complaintID, ok := parseUintParam(c, "complaint_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid complaint_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), complaintID)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
