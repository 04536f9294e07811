package http

import (
	"errors"
	"net/http"

	"github.com/lavizaismail/hostelhub/internal/domain/fault"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeFault renders a workflow error with the status its kind calls for.
// Duplicate is not handled here: an idempotent replay is a success and each
// handler decides what body to return alongside the warning.
func writeFault(c echo.Context, err error) error {
	var fe *fault.Error
	if errors.As(err, &fe) {
		switch fe.Kind {
		case fault.KindValidation:
			details := make([]FieldError, 0, len(fe.Fields))
			for _, f := range fe.Fields {
				details = append(details, FieldError{Field: f, Message: "is required"})
			}
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   fe.Msg,
				Code:    fe.Kind.String(),
				Details: details,
			})
		case fault.KindConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: fe.Msg, Code: fe.Kind.String()})
		case fault.KindRoomFull:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: fe.Msg, Code: fe.Kind.String()})
		case fault.KindNotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: fe.Msg, Code: fe.Kind.String()})
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found", Code: "not_found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
