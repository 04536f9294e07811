package http

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func parseUintParam(c echo.Context, name string) (uint, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// actorID reads the authenticated actor from the X-Actor-Id header. The
// idempotency middleware has already rejected requests without a numeric one.
func actorID(c echo.Context) (uint, bool) {
	raw := c.Request().Header.Get("X-Actor-Id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
