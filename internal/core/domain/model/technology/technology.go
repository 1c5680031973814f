// Package technology contains the Technology aggregate: an invention,
// process, or product listed on the platform, owned by one or more users
// through pivot roles.
package technology

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// ErrTechnologyIsNotConstructed is returned when a Technology instance was
// not created through NewTechnology or RestoreTechnology.
var ErrTechnologyIsNotConstructed = errors.New("Technology must be created via NewTechnology constructor")

// ErrOwnerNotFound is returned when a technology has no user with the owner
// pivot role. Listings are expected to always carry one.
var ErrOwnerNotFound = errors.New("technology has no owner")

// PivotRole is the role a user holds on a technology relation row.
type PivotRole string

const (
	// RoleOwner marks the user who registered and manages the technology.
	RoleOwner PivotRole = "OWNER"

	// RoleDefault marks any other related user.
	RoleDefault PivotRole = "DEFAULT_USER"
)

// UserRole is one row of the technology-user pivot.
type UserRole struct {
	UserID kernel.UUID
	Role   PivotRole
}

// Status represents the publication state of a technology.
type Status int

const (
	StatusUnknown Status = iota
	StatusDraft
	StatusPending
	StatusInReview
	StatusRequestedChanges
	StatusChangesMade
	StatusApproved
	StatusRejected
	StatusPublished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusDraft:            "draft",
		StatusPending:          "pending",
		StatusInReview:         "in_review",
		StatusRequestedChanges: "requested_changes",
		StatusChangesMade:      "changes_made",
		StatusApproved:         "approved",
		StatusRejected:         "rejected",
		StatusPublished:        "published",
	}
}

// StatusFromString parses the wire representation of a publication status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks that the status is one of the declared publication states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the lowercase wire representation.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Technology is the aggregate root for a platform listing. Orders reference
// it, and its pivot rows drive authorization scoping: the OWNER-role user may
// manage the technology's orders without holding any global capability.
type Technology struct {
	id     kernel.UUID
	title  string
	status Status
	users  []UserRole

	isConstructed bool
}

// NewTechnology creates a technology listing with the given pivot rows.
// Title must not be empty and the status must be valid.
func NewTechnology(id kernel.UUID, title string, status Status, users []UserRole) (*Technology, error) {
	tech := &Technology{
		users:         users,
		isConstructed: true,
	}

	if err := errors.Join(
		tech.setID(id),
		tech.setTitle(title),
		tech.setStatus(status),
	); err != nil {
		return nil, err
	}

	return tech, nil
}

// RestoreTechnology reconstructs a technology from persistence.
func RestoreTechnology(id kernel.UUID, title string, status Status, users []UserRole) (*Technology, error) {
	return NewTechnology(id, title, status, users)
}

// Validate ensures the Technology instance was properly constructed.
func (t *Technology) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTechnologyIsNotConstructed
	}

	return nil
}

// ID returns the technology's unique identifier.
func (t *Technology) ID() kernel.UUID {
	return t.id
}

// Title returns the listing title.
func (t *Technology) Title() string {
	return t.title
}

// Status returns the publication state.
func (t *Technology) Status() Status {
	return t.status
}

// Users returns the pivot rows relating users to this technology.
func (t *Technology) Users() []UserRole {
	return t.users
}

// Owner returns the identifier of the user holding the OWNER pivot role.
// Returns ErrOwnerNotFound when no such row exists.
func (t *Technology) Owner() (kernel.UUID, error) {
	for _, ur := range t.users {
		if ur.Role == RoleOwner {
			return ur.UserID, nil
		}
	}
	return kernel.UUID{}, ErrOwnerNotFound
}

// IsOwnedBy reports whether the given user holds the OWNER pivot role on
// this technology.
func (t *Technology) IsOwnedBy(userID kernel.UUID) bool {
	for _, ur := range t.users {
		if ur.Role == RoleOwner && ur.UserID.IsEqual(userID) {
			return true
		}
	}
	return false
}

func (t *Technology) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Technology) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	t.title = title
	return nil
}

func (t *Technology) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}
