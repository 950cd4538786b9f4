// Package pgtest starts a disposable PostgreSQL container for integration
// suites and prepares the service schema in it.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcellocker/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated database running in a container.
type Database struct {
	Container *tc_postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine, opens it through postgres.Open with pool and
// migrates the schema.
func Start(ctx context.Context, pool postgres.Pool) (*Database, error) {
	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	database := &Database{Container: container}

	database.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	database.DB, err = postgres.Open(database.DSN, pool, nil)
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(ctx, database.DB); err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	return database, nil
}

// Truncate empties every table and restarts the id sequences.
func (d *Database) Truncate(ctx context.Context) error {
	return d.DB.WithContext(ctx).
		Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", strings.Join(postgres.Tables, ", "))).
		Error
}

// Terminate closes the pool and removes the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
