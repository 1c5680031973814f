package reviewrepo

import (
	"context"
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRepository implements ReviewRepository using GORM.
type GormRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRepository creates a new GORM review repository.
func NewGormRepository(db *gorm.DB, tracker aggregateTracker) *GormRepository {
	return &GormRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database.
func (r *GormRepository) Add(ctx context.Context, review *serviceorder.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(review)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(review.ID(), review)
	return nil
}

// Update saves an existing review to the database.
func (r *GormRepository) Update(ctx context.Context, review *serviceorder.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(review)
	if err != nil {
		return err
	}

	// Select("*") keeps zero values in the update, so an emptied bullet
	// point list actually clears the column.
	result := r.db.WithContext(ctx).Model(&ReviewDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(review.ID(), review)
	return nil
}

// Get retrieves a review by ID.
func (r *GormRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a review by ID.
func (r *GormRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReviewDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewResourceDeletedError("review", id.String())
	}

	return nil
}
