package technologyorderrepo

import (
	"context"
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRepository implements TechnologyOrderRepository using GORM.
type GormRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRepository creates a new GORM technology order repository.
func NewGormRepository(db *gorm.DB, tracker aggregateTracker) *GormRepository {
	return &GormRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new technology order to the database.
func (r *GormRepository) Add(ctx context.Context, aggregate *techorder.Order) error {
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

// Update saves an existing technology order to the database.
func (r *GormRepository) Update(ctx context.Context, aggregate *techorder.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") keeps zero values in the update.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a technology order by ID.
func (r *GormRepository) Get(ctx context.Context, id kernel.UUID) (*techorder.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technology order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
