// Package user contains the User entity as seen by the order subsystem:
// identity, contact details for notifications, and the role name driving
// capability checks.
package user

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Role names seeded by the platform. Capability sets for each role live in
// the access package.
const (
	RoleDefaultUser = "DEFAULT_USER"
	RoleResearcher  = "RESEARCHER"
	RoleAdmin       = "ADMIN"
)

// User is a registered platform user.
type User struct {
	id       kernel.UUID
	email    string
	fullName string
	role     string

	isConstructed bool
}

// NewUser creates a user with the given role name.
func NewUser(id kernel.UUID, email, fullName, role string) (*User, error) {
	u := &User{
		fullName:      fullName,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email, fullName, role string) (*User, error) {
	return NewUser(id, email, fullName, role)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's notification address.
func (u *User) Email() string {
	return u.email
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.fullName
}

// Role returns the user's role name.
func (u *User) Role() string {
	return u.role
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role string) error {
	if role == "" {
		return errs.NewValueIsRequiredError("role")
	}
	u.role = role
	return nil
}
