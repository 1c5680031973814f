package techorder

import (
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// Operation names reported inside status guard errors. The strings appear in
// API error messages, so they are stable.
const (
	opCloseOrder  = "CLOSE ORDER"
	opCancelOrder = "CANCEL ORDER"
)

// Status represents the lifecycle state of a technology order.
//
// State transitions:
//
//	Open ──┬──> Closed
//	       └──> Canceled
//
// Closed and Canceled are terminal states; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status of every order. Only open orders can be
	// closed or canceled.
	Open

	// Closed indicates the seller accepted the order and recorded the
	// negotiated unit value. Terminal.
	Closed

	// Canceled indicates either party withdrew from the order. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Open:     "open",
		Closed:   "closed",
		Canceled: "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:     "open",
		Closed:   "closed",
		Canceled: "canceled",
	}
}

// StatusFromString parses the wire representation of a status.
// Unrecognized values yield an error; there is no lenient fallback because
// status strings arrive in query filters and must fail loudly.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks that the status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the lowercase wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Open -> Closed
//
// Any other source state returns a StatusNotAllowedError carrying the
// operation name and the current status.
func (s Status) Close() (Status, error) {
	if s != Open {
		return 0, errs.NewStatusNotAllowedError(opCloseOrder, s.String())
	}

	return Closed, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Open -> Canceled
//
// Any other source state returns a StatusNotAllowedError carrying the
// operation name and the current status.
func (s Status) Cancel() (Status, error) {
	if s != Open {
		return 0, errs.NewStatusNotAllowedError(opCancelOrder, s.String())
	}

	return Canceled, nil
}
