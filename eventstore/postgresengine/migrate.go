package postgresengine

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrMigrationFailed wraps failures while migrating the events table.
var ErrMigrationFailed = errors.New("migrating the events table failed")

// Migrate creates or upgrades the default "events" table.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.Join(ErrMigrationFailed, eventstore.ErrNilDatabaseConnection)
	}

	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	return nil
}
