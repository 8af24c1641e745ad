package wash

import "github.com/washerhq/carwash-api/internal/apperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Rules
// ===============================

// Any status may be set to any other status; no transition graph is
// enforced. The only consumer of the field is the payment gate below.

// CanRegisterPayment gates payment creation and re-linking on the target
// appointment being completed. The comparison is exact and case-sensitive.
func CanRegisterPayment(current Status) error {
	if current != StatusCompleted {
		return apperr.InvalidState("appointment must be completed to register a payment")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
