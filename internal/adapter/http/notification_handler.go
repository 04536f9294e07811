package http

import (
	"net/http"
	"strconv"

	"github.com/lavizaismail/hostelhub/internal/usecase/notify"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ uc *notify.Usecase }

func NewNotificationHandler(uc *notify.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) Inbox(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}
	notes, err := h.uc.Inbox(c.Request().Context(), userID)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, notes)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notifID, ok := parseUintParam(c, "notification_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid notification_id path param"})
	}
	userID, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}
	if err := h.uc.MarkRead(c.Request().Context(), notifID, userID); err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"notification_id": notifID, "is_read": true})
}

func (h *NotificationHandler) RecentAudit(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.uc.RecentAudit(c.Request().Context(), limit)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
