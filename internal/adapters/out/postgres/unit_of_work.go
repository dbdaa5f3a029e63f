// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one business transaction, hands out
// repositories bound to that transaction, and tracks the aggregates the
// transaction touched.
package postgres

import (
	"context"

	"fleet/internal/adapters/out/postgres/containerrepo"
	"fleet/internal/adapters/out/postgres/shiprepo"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/ship"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// connection. Each business operation gets a fresh instance so concurrent
// operations stay isolated. The notifier and sink are handed to the
// repositories, which wire them into every restored aggregate.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	notifier container.HazardNotifier
	sink     ship.ReportSink
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	notifier container.HazardNotifier,
	sink ship.ReportSink,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:       db,
		notifier: notifier,
		sink:     sink,
	}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		notifier:          f.notifier,
		sink:              f.sink,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for a single business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	notifier          container.HazardNotifier
	sink              ship.ReportSink
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op.
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
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ShipRepository returns a ship repository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) ShipRepository() ports.ShipRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return shiprepo.NewGormShipRepository(db, uow, uow.notifier, uow.sink)
}

// ContainerRepository returns a container repository bound to the current
// transaction, or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) ContainerRepository() ports.ContainerRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return containerrepo.NewGormContainerRepository(db, uow, uow.notifier)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repositories call it on Add and Update; the collected aggregates
// are available for post-commit processing.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
