// Package servicerepo provides read access to service offerings.
package servicerepo

import (
	"context"
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/service"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceDTO represents the database structure for service offerings.
type ServiceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	ResponsibleID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for services.
func (ServiceDTO) TableName() string {
	return "services"
}

// GormRepository implements ServiceRepository using GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM service repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Get retrieves a service by ID.
func (r *GormRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto ServiceDTO) (*service.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	responsibleID, err := kernel.UUIDFromBytes(dto.ResponsibleID[:])
	if err != nil {
		return nil, err
	}

	return service.RestoreService(id, dto.Name, responsibleID)
}
