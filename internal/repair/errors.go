package repair

import "fmt"

// LayoutError is a structural failure that aborts repair. Callers match the
// sentinel values with errors.Is.
type LayoutError struct {
	Code    string
	Message string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

var (
	ErrMissingLevel      = &LayoutError{Code: "missing_level", Message: "level data is missing"}
	ErrInsufficientRooms = &LayoutError{Code: "insufficient_rooms", Message: "a level needs at least 2 rooms"}
)
