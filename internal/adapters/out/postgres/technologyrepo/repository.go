// Package technologyrepo provides read access to technology listings and
// their user pivot rows. The order subsystem never writes technologies; it
// only reads them for ownership resolution and listing titles.
package technologyrepo

import (
	"context"
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/technology"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TechnologyDTO represents the database structure for technology listings.
type TechnologyDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title  string
	Status int
	Users  []TechnologyUserDTO `gorm:"foreignKey:TechnologyID"`
}

// TableName specifies the database table name for technologies.
func (TechnologyDTO) TableName() string {
	return "technologies"
}

// TechnologyUserDTO is one row of the technology-user pivot table. The
// OWNER-role row drives authorization scoping for order operations.
type TechnologyUserDTO struct {
	TechnologyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role         string
}

// TableName specifies the database table name for the pivot.
func (TechnologyUserDTO) TableName() string {
	return "technology_users"
}

// GormRepository implements TechnologyRepository using GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM technology repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Get retrieves a technology with its user pivot rows.
func (r *GormRepository) Get(ctx context.Context, id kernel.UUID) (*technology.Technology, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TechnologyDTO
	err := r.db.WithContext(ctx).Preload("Users").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technology", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto TechnologyDTO) (*technology.Technology, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	users := make([]technology.UserRole, 0, len(dto.Users))
	for _, row := range dto.Users {
		userID, userErr := kernel.UUIDFromBytes(row.UserID[:])
		if userErr != nil {
			return nil, userErr
		}
		users = append(users, technology.UserRole{
			UserID: userID,
			Role:   technology.PivotRole(row.Role),
		})
	}

	return technology.RestoreTechnology(id, dto.Title, technology.Status(dto.Status), users)
}
