package check

import (
	"fmt"
	"slices"
)

// Status is where a check is in its lifecycle.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPrinted  Status = "printed"
	StatusEmailed  Status = "emailed"
	StatusVoid     Status = "void"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusDraft, StatusPending, StatusApproved, StatusPrinted, StatusEmailed, StatusVoid}

var transitions = map[Status][]Status{
	StatusDraft:    {StatusPending, StatusApproved, StatusPrinted, StatusVoid},
	StatusPending:  {StatusApproved, StatusVoid},
	StatusApproved: {StatusPrinted, StatusEmailed, StatusVoid},
	StatusPrinted:  {StatusEmailed, StatusVoid},
	StatusEmailed:  {StatusVoid},
}

// ParseStatus reads a status name.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !slices.Contains(Statuses, status) {
		return "", fmt.Errorf("unknown check status '%s'", s)
	}

	return status, nil
}

// CanTransitionTo reports whether a check in this status may move to the given one.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// IsIssued reports whether a check in this status has left the drafting stage
// and counts against its bank account.
func (s Status) IsIssued() bool {
	switch s {
	case StatusPending, StatusApproved, StatusPrinted, StatusEmailed:
		return true
	default:
		return false
	}
}
