package models

import "errors"

// Error kinds shared by the dial session, the call store and the follow-up scheduler.
// Callers in the UI treat all of them as "nothing happens".
var (
	ErrInvalidState = errors.New("operation not allowed in current state")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
)
