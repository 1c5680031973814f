// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence. Handlers that trigger emails
// return the notification messages as data; dispatch happens after commit.
package commands

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TechnologyOrderRepoFactory provides access to the technology order
	// repository within a transaction.
	TechnologyOrderRepoFactory interface {
		TechnologyOrderRepository() ports.TechnologyOrderRepository
	}

	// ServiceOrderRepoFactory provides access to the service order
	// repository within a transaction.
	ServiceOrderRepoFactory interface {
		ServiceOrderRepository() ports.ServiceOrderRepository
	}

	// ReviewRepoFactory provides access to the review repository within a
	// transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// TechnologyRepoFactory provides read access to technology listings
	// within a transaction.
	TechnologyRepoFactory interface {
		TechnologyRepository() ports.TechnologyRepository
	}

	// ServiceRepoFactory provides read access to service offerings within a
	// transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// UserRepoFactory provides read access to users within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// TechnologyOrderUoW manages transactions for technology order
	// operations. Commands also need the technology (for ownership and
	// titles) and users (for notification recipients).
	TechnologyOrderUoW interface {
		TxManager
		TechnologyOrderRepoFactory
		TechnologyRepoFactory
		UserRepoFactory
	}

	// TechnologyOrderUoWFactory creates technology order unit of work
	// instances.
	TechnologyOrderUoWFactory interface {
		Create() TechnologyOrderUoW
	}

	// ServiceOrderUoW manages transactions for service order operations.
	ServiceOrderUoW interface {
		TxManager
		ServiceOrderRepoFactory
		ServiceRepoFactory
		UserRepoFactory
	}

	// ServiceOrderUoWFactory creates service order unit of work instances.
	ServiceOrderUoWFactory interface {
		Create() ServiceOrderUoW
	}

	// ReviewUoW manages transactions for service order review operations.
	// The service order repository is needed to verify the reviewed order.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		ServiceOrderRepoFactory
		UserRepoFactory
	}

	// ReviewUoWFactory creates review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
