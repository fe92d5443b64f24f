package check

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrReadOnly is returned when a change is attempted without write capability.
	ErrReadOnly = errors.New("read-only session: changes are not allowed")
	// ErrInvalidTransition is returned when a check cannot move to the requested status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidDraft is returned when a draft check is missing required information.
	ErrInvalidDraft = errors.New("invalid check")
	// ErrLocked is returned when a change would alter a check that has already been issued.
	ErrLocked = errors.New("check is locked")
)
