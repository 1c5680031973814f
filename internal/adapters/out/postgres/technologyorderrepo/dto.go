// Package technologyorderrepo provides data transfer objects and mapping
// functions for technology order persistence. Handles the conversion between
// the order aggregate and its relational representation.
package technologyorderrepo

import (
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting technology order
// aggregates. Indexed by technology and buyer for the listing queries.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TechnologyID       uuid.UUID `gorm:"type:uuid;index"`
	UserID             uuid.UUID `gorm:"type:uuid;index"`
	Quantity           int
	Use                int
	Funding            int
	Comment            string
	Status             int `gorm:"index"`
	UnitValue          float64
	CancellationReason string
	CreatedAt          time.Time
}

// TableName specifies the database table name for technology orders.
func (OrderDTO) TableName() string {
	return "technology_orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(order *techorder.Order) OrderDTO {
	return OrderDTO{
		ID:                 order.ID().Bytes(),
		TechnologyID:       order.TechnologyID().Bytes(),
		UserID:             order.BuyerID().Bytes(),
		Quantity:           order.Quantity(),
		Use:                int(order.Use()),
		Funding:            int(order.Funding()),
		Comment:            order.Comment(),
		Status:             int(order.Status()),
		UnitValue:          order.UnitValue(),
		CancellationReason: order.CancellationReason(),
		CreatedAt:          order.CreatedAt(),
	}
}

// toDomain converts a database DTO back to the order aggregate.
func toDomain(dto OrderDTO) (*techorder.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	technologyID, err := kernel.UUIDFromBytes(dto.TechnologyID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return techorder.RestoreOrder(
		id,
		technologyID,
		buyerID,
		dto.Quantity,
		techorder.Use(dto.Use),
		techorder.Funding(dto.Funding),
		dto.Comment,
		techorder.Status(dto.Status),
		dto.UnitValue,
		dto.CancellationReason,
		dto.CreatedAt,
	)
}
