package http

import (
	"errors"
	"net/http"

	"github.com/lavizaismail/hostelhub/internal/domain/fault"
	"github.com/lavizaismail/hostelhub/internal/usecase/allocation"

	"github.com/labstack/echo/v4"
)

type AllocationHandler struct{ uc *allocation.Usecase }

func NewAllocationHandler(uc *allocation.Usecase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

type requestRoomReq struct {
	StudentID   uint   `json:"student_id"  validate:"required"`
	RoomID      uint   `json:"room_id"     validate:"required"`
	Preferences string `json:"preferences" validate:"max=500"`
}

func (h *AllocationHandler) RequestRoom(c echo.Context) error {
	var req requestRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.RequestRoom(c.Request().Context(), allocation.RequestRoomInput{
		StudentID:   req.StudentID,
		RoomID:      req.RoomID,
		Preferences: req.Preferences,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AllocationHandler) Approve(c echo.Context) error {
	allocID, ok := parseUintParam(c, "allocation_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid allocation_id path param"})
	}
	warden, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}

	result, err := h.uc.Approve(c.Request().Context(), allocation.ApproveInput{
		WardenID:     warden,
		AllocationID: allocID,
	})
	if err != nil {
		var fe *fault.Error
		if errors.As(err, &fe) && fe.Kind == fault.KindDuplicate && result != nil {
			// Replayed approval: nothing changed, return the existing bill.
			return c.JSON(http.StatusOK, map[string]any{
				"warning":    fe.Msg,
				"allocation": result.Allocation,
				"bill":       result.Bill,
			})
		}
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type rejectAllocationReq struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (h *AllocationHandler) Reject(c echo.Context) error {
	allocID, ok := parseUintParam(c, "allocation_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid allocation_id path param"})
	}
	warden, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}
	var req rejectAllocationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Reject(c.Request().Context(), allocation.RejectInput{
		WardenID:     warden,
		AllocationID: allocID,
		Reason:       req.Reason,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AllocationHandler) Checkout(c echo.Context) error {
	allocID, ok := parseUintParam(c, "allocation_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid allocation_id path param"})
	}
	warden, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}

	dto, err := h.uc.Checkout(c.Request().Context(), allocation.CheckoutInput{
		WardenID:     warden,
		AllocationID: allocID,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AllocationHandler) Get(c echo.Context) error {
	allocID, ok := parseUintParam(c, "allocation_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid allocation_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), allocID)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
