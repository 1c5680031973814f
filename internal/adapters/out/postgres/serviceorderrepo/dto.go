// Package serviceorderrepo provides data transfer objects and mapping
// functions for service order persistence.
package serviceorderrepo

import (
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
)

// ServiceOrderDTO represents the database structure for persisting service
// order aggregates.
type ServiceOrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID `gorm:"type:uuid;index"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	Comment   string
	Status    int `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for service orders.
func (ServiceOrderDTO) TableName() string {
	return "service_orders"
}

// fromDomain converts a service order aggregate to its database
// representation.
func fromDomain(order *serviceorder.ServiceOrder) ServiceOrderDTO {
	return ServiceOrderDTO{
		ID:        order.ID().Bytes(),
		ServiceID: order.ServiceID().Bytes(),
		UserID:    order.UserID().Bytes(),
		Quantity:  order.Quantity(),
		Comment:   order.Comment(),
		Status:    int(order.Status()),
		CreatedAt: order.CreatedAt(),
	}
}

// toDomain converts a database DTO back to the service order aggregate.
func toDomain(dto ServiceOrderDTO) (*serviceorder.ServiceOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return serviceorder.RestoreServiceOrder(
		id,
		serviceID,
		userID,
		dto.Quantity,
		dto.Comment,
		serviceorder.Status(dto.Status),
		dto.CreatedAt,
	)
}
