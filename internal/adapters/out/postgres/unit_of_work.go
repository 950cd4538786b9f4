// Package postgres provides the GORM-based persistence gateway: connection
// setup, schema migration and the Unit of Work that scopes repository calls to
// one database transaction.
//
// Each Unit of Work checks a dedicated connection out of the bounded pool when
// it begins, runs a read-committed transaction on it and hands the connection
// back on Commit or Rollback.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, 5*time.Second)
//	uow := factory.Create()
//
//	id, err := ports.InTransaction(ctx, uow, func(ctx context.Context) (kernel.ID, error) {
//	    if err := uow.SiteRepository().Add(ctx, s); err != nil {
//	        return 0, err
//	    }
//	    return s.ID(), nil
//	})
//
// Concurrency Considerations:
//   - A UnitOfWork instance belongs to one goroutine; create one per operation
//   - Conditional writes in the compartment repository resolve competing claims
//   - Begin fails with errs.ErrResourceUnavailable when the pool stays exhausted
//     for longer than the acquire timeout
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parcellocker/internal/adapters/out/postgres/clientrepo"
	"parcellocker/internal/adapters/out/postgres/compartmentrepo"
	"parcellocker/internal/adapters/out/postgres/parcelrepo"
	"parcellocker/internal/adapters/out/postgres/siterepo"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"

	"gorm.io/gorm"
)

// DefaultAcquireTimeout bounds the wait for a pooled connection in Begin.
const DefaultAcquireTimeout = 5 * time.Second

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
//
// Example:
//
//	db, err := postgres.Open(dsn, postgres.Pool{}, logger)
//	if err != nil {
//	    return err
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db, postgres.DefaultAcquireTimeout)
type GormUnitOfWorkFactory struct {
	db             *gorm.DB
	acquireTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory. A non-positive acquireTimeout
// selects DefaultAcquireTimeout.
func NewGormUnitOfWorkFactory(db *gorm.DB, acquireTimeout time.Duration) *GormUnitOfWorkFactory {
	if acquireTimeout <= 0 {
		acquireTimeout = DefaultAcquireTimeout
	}
	return &GormUnitOfWorkFactory{
		db:             db,
		acquireTimeout: acquireTimeout,
	}
}

// Create produces a fresh, not yet begun UnitOfWork.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:             f.db,
		acquireTimeout: f.acquireTimeout,
	}
}

// GormUnitOfWork coordinates one database transaction on a dedicated pooled
// connection. Repositories obtained after Begin run inside that transaction;
// before Begin they run on the shared pool in autocommit mode.
type GormUnitOfWork struct {
	db             *gorm.DB
	acquireTimeout time.Duration

	conn     *sql.Conn
	tx       *gorm.DB
	finished bool
}

// Begin acquires a connection and starts a read-committed transaction bound to
// ctx. Cancelling ctx rolls the transaction back. Calling Begin on an active
// unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	sqlDB, err := uow.db.DB()
	if err != nil {
		return err
	}

	acquireCtx, cancel := context.WithTimeout(ctx, uow.acquireTimeout)
	defer cancel()

	conn, err := sqlDB.Conn(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return errs.NewResourceUnavailableErrorWithCause("database connection", uow.acquireTimeout, err)
		}
		return err
	}

	session := uow.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	session.Statement.ConnPool = conn

	tx := session.Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if tx.Error != nil {
		_ = conn.Close()
		return tx.Error
	}

	uow.conn = conn
	uow.tx = tx
	uow.finished = false
	return nil
}

// Commit makes the transaction's changes permanent and returns the connection
// to the pool. It fails with gorm.ErrInvalidTransaction if Begin was not called.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.release()
	return err
}

// Rollback discards the transaction's changes and returns the connection to
// the pool. Rolling back a finished unit of work is a no-op; rolling back one
// that never began fails with gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		if uow.finished {
			return nil
		}
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.release()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.handle())
}

func (uow *GormUnitOfWork) SiteRepository() ports.SiteRepository {
	return siterepo.NewGormSiteRepository(uow.handle())
}

func (uow *GormUnitOfWork) CompartmentRepository() ports.CompartmentRepository {
	return compartmentrepo.NewGormCompartmentRepository(uow.handle())
}

func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.handle())
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) release() {
	if uow.conn != nil {
		_ = uow.conn.Close()
	}
	uow.conn = nil
	uow.tx = nil
	uow.finished = true
}
