package portal

import (
	"context"
	"embed"
	"io/fs"

	"github.com/uptrace/bun"

	"github.com/naradigital/go-portal/internal/storage"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the embedded migration files for this package
func GetMigrationsFS() embed.FS {
	return migrationsFS
}

// RunMigrations applies the embedded schema migrations to the database,
// creating the page content tables. Safe to run on every boot; statements
// are written to be re-runnable.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	sub, err := fs.Sub(migrationsFS, "data/sql/migrations")
	if err != nil {
		return err
	}
	return storage.Migrate(ctx, db, sub)
}
