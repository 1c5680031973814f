package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository instances bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle: Begin, then Commit on success or Rollback on any error path.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TechnologyOrderRepository returns a repository bound to the current
	// transaction.
	TechnologyOrderRepository() TechnologyOrderRepository

	// ServiceOrderRepository returns a repository bound to the current
	// transaction.
	ServiceOrderRepository() ServiceOrderRepository

	// ReviewRepository returns a repository bound to the current transaction.
	ReviewRepository() ReviewRepository

	// TechnologyRepository returns a repository bound to the current
	// transaction.
	TechnologyRepository() TechnologyRepository

	// ServiceRepository returns a repository bound to the current transaction.
	ServiceRepository() ServiceRepository

	// UserRepository returns a repository bound to the current transaction.
	UserRepository() UserRepository
}
