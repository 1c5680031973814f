// Package ports defines the persistence contracts between the application
// core and its adapters. Repositories speak domain aggregates; mapping to
// storage rows is the adapters' concern.
package ports

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/service"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/technology"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
)

// TechnologyOrderRepository defines the persistence contract for technology
// order aggregates.
type TechnologyOrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *techorder.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *techorder.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*techorder.Order, error)
}

// ServiceOrderRepository defines the persistence contract for service order
// aggregates.
type ServiceOrderRepository interface {
	// Add persists a new service order aggregate.
	Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Update persists changes to an existing service order aggregate.
	Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Get retrieves a service order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)

	// Delete removes a service order. Returns a ResourceDeletedError when
	// no row was removed.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ReviewRepository defines the persistence contract for service order reviews.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, review *serviceorder.Review) error

	// Update persists changes to an existing review.
	Update(ctx context.Context, review *serviceorder.Review) error

	// Get retrieves a review by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.Review, error)

	// Delete removes a review. Returns a ResourceDeletedError when no row
	// was removed.
	Delete(ctx context.Context, id kernel.UUID) error
}

// TechnologyRepository provides read access to technology listings for order
// creation and authorization scoping.
type TechnologyRepository interface {
	// Get retrieves a technology with its user pivot rows.
	Get(ctx context.Context, id kernel.UUID) (*technology.Technology, error)
}

// ServiceRepository provides read access to service offerings.
type ServiceRepository interface {
	// Get retrieves a service by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*service.Service, error)
}

// UserRepository provides read access to platform users.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
