// Package service contains the Service entity: a unit of work offered on the
// platform and answered for by a single responsible user.
package service

import (
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// ErrServiceIsNotConstructed is returned when a Service instance was not
// created through NewService.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// Service is an offering fulfilled by its responsible user. Service orders
// reference it, and the responsible user is the notification recipient and
// authorization anchor for those orders.
type Service struct {
	id            kernel.UUID
	name          string
	responsibleID kernel.UUID

	isConstructed bool
}

// NewService creates a service offering.
func NewService(id kernel.UUID, name string, responsibleID kernel.UUID) (*Service, error) {
	svc := &Service{
		isConstructed: true,
	}

	if err := errors.Join(
		svc.setID(id),
		svc.setName(name),
		svc.setResponsibleID(responsibleID),
	); err != nil {
		return nil, err
	}

	return svc, nil
}

// RestoreService reconstructs a service from persistence.
func RestoreService(id kernel.UUID, name string, responsibleID kernel.UUID) (*Service, error) {
	return NewService(id, name, responsibleID)
}

// Validate ensures the Service instance was properly constructed.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}

	return nil
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the offering name.
func (s *Service) Name() string {
	return s.name
}

// ResponsibleID returns the identifier of the user answering for the service.
func (s *Service) ResponsibleID() kernel.UUID {
	return s.responsibleID
}

// IsResponsible reports whether the given user answers for this service.
func (s *Service) IsResponsible(userID kernel.UUID) bool {
	return s.responsibleID.IsEqual(userID)
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Service) setResponsibleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.responsibleID = id
	return nil
}
