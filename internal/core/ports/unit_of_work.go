package ports

import (
	"context"
)

// TxManager handles the lifecycle of one database transaction.
// Rollback after a successful Commit is a no-op.
type TxManager interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UnitOfWorkFactory creates a fresh UnitOfWork for every business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// after Begin run inside that transaction.
type UnitOfWork interface {
	TxManager

	ClientRepository() ClientRepository
	SiteRepository() SiteRepository
	CompartmentRepository() CompartmentRepository
	ParcelRepository() ParcelRepository
}

// InTransaction runs work inside a transaction of tx.
//
// On success the transaction is committed before the result is returned. If work
// fails or panics, the transaction is rolled back and the error (or panic) is
// passed on unmodified. Begin failures, such as errs.ErrResourceUnavailable from
// an exhausted connection pool, are returned as is.
//
// Example:
//
//	uow := factory.Create()
//	id, err := ports.InTransaction(ctx, uow, func(ctx context.Context) (kernel.ID, error) {
//	    s, _ := site.NewSite(city, postalCode, location)
//	    if err := uow.SiteRepository().Add(ctx, s); err != nil {
//	        return 0, err
//	    }
//	    return s.ID(), nil
//	})
func InTransaction[T any](ctx context.Context, tx TxManager, work func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if err := tx.Begin(ctx); err != nil {
		return zero, err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	result, err := work(ctx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, err
	}
	committed = true

	return result, nil
}
