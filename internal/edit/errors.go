package edit

import "fmt"

// EditError is returned when an operation would break a level invariant. The
// level the operation was applied to is left unchanged.
type EditError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *EditError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

const (
	CodeNotFound    = "not_found"
	CodeDuplicateID = "duplicate_id"
	CodeInvalid     = "invalid"
	CodeOverlap     = "overlap"
	CodeTooFewRooms = "too_few_rooms"
	CodePOIConflict = "poi_conflict"
	CodePOIRequired = "poi_required"
	CodeUnknownOp   = "unknown_op"
)

func newError(code, format string, args ...any) *EditError {
	return &EditError{Code: code, Message: fmt.Sprintf(format, args...)}
}
