package serviceorder

import (
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
//
// State transitions:
//
//	Requested ──> Performed
//
// Cancellation is expressed by deleting the order, so Canceled only appears
// on rows restored from historical data.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Requested is the initial status of every service order.
	Requested

	// Performed indicates the responsible user carried out the service.
	Performed

	// Canceled is kept for historical rows; active cancellation deletes
	// the order instead.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Requested: "requested",
		Performed: "performed",
		Canceled:  "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "requested",
		Performed: "performed",
		Canceled:  "canceled",
	}
}

// StatusFromString parses the wire representation of a status.
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
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
