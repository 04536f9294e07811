package fault

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies workflow errors so the transport layer can render an
// accurate response for each one instead of a generic failure.
type Kind int

const (
	// KindValidation: malformed or incomplete input. No state change.
	KindValidation Kind = iota
	// KindConflict: a precondition about current state was violated.
	KindConflict
	// KindDuplicate: an idempotency guard tripped. Safe to treat as a no-op.
	KindDuplicate
	// KindRoomFull: lost a race for the last free slot at commit time.
	// Needs manual remediation, surfaced separately from ordinary conflicts.
	KindRoomFull
	// KindNotFound: the referenced entity does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindDuplicate:
		return "duplicate"
	case KindRoomFull:
		return "room_full"
	case KindNotFound:
		return "not_found"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	// Fields holds the missing/invalid field names for validation errors.
	Fields []string
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return e.Msg + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Msg
}

func Validation(msg string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Fields: fields}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Msg: fmt.Sprintf(format, args...)}
}

func RoomFull(format string, args ...any) *Error {
	return &Error{Kind: KindRoomFull, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func IsKind(err error, k Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == k
}
