package valueobject

import "errors"

// ErrInvalidStatusTransition is returned when an aggregate is asked to move
// to a status its lifecycle does not allow from the current one.
var ErrInvalidStatusTransition = errors.New("invalid status transition")
