// Package userrepo provides read access to platform users for notification
// recipients and authorization checks.
package userrepo

import (
	"context"
	"errors"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database structure for platform users as seen by
// the order subsystem.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"uniqueIndex"`
	FullName string
	Role     string
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// GormRepository implements UserRepository using GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM user repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Get retrieves a user by ID.
func (r *GormRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.FullName, dto.Role)
}
