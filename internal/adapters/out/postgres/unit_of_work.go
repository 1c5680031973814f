// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work coordinates a database transaction across the
// repositories a command touches and tracks the aggregates modified within
// it, so post-commit processing (such as notification dispatch) can inspect
// what changed.
package postgres

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/reviewrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/serviceorderrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/servicerepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/technologyorderrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/technologyrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/adapters/out/postgres/userrepo"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes. Repositories obtained from it run inside the current transaction
// when one is active, and against the main connection otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op rather than a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TechnologyOrderRepository returns an order repository bound to the current
// transaction. Added and updated aggregates are tracked on this unit of work.
func (uow *GormUnitOfWork) TechnologyOrderRepository() ports.TechnologyOrderRepository {
	return technologyorderrepo.NewGormRepository(uow.conn(), uow)
}

// ServiceOrderRepository returns a service order repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ServiceOrderRepository() ports.ServiceOrderRepository {
	return serviceorderrepo.NewGormRepository(uow.conn(), uow)
}

// ReviewRepository returns a review repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormRepository(uow.conn(), uow)
}

// TechnologyRepository returns a read-only technology repository bound to
// the current transaction.
func (uow *GormUnitOfWork) TechnologyRepository() ports.TechnologyRepository {
	return technologyrepo.NewGormRepository(uow.conn())
}

// ServiceRepository returns a read-only service repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ServiceRepository() ports.ServiceRepository {
	return servicerepo.NewGormRepository(uow.conn())
}

// UserRepository returns a read-only user repository bound to the current
// transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by write repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
