package serviceorderrepo

import (
	"context"
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRepository implements ServiceOrderRepository using GORM.
type GormRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRepository creates a new GORM service order repository.
func NewGormRepository(db *gorm.DB, tracker aggregateTracker) *GormRepository {
	return &GormRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service order to the database.
func (r *GormRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing service order to the database.
func (r *GormRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") keeps zero values in the update, so a cleared comment
	// actually clears the column.
	result := r.db.WithContext(ctx).Model(&ServiceOrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service order by ID.
func (r *GormRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a service order by ID.
func (r *GormRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ServiceOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewResourceDeletedError("service order", id.String())
	}

	return nil
}
