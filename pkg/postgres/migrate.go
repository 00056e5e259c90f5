package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // register postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // register file source driver
)

// RunMigrations applies all pending schema migrations from migrationsDir
// (a source URL such as "file://migrations"). The service runs this at
// startup; an already up-to-date schema is not an error.
func RunMigrations(dsn string, migrationsDir string) error {
	return runMigrations(dsn, migrationsDir, func(m *migrate.Migrate) error { return m.Up() })
}

// RunMigrationsDown rolls back all schema migrations. Used by operational
// tooling, never by the service itself.
func RunMigrationsDown(dsn string, migrationsDir string) error {
	return runMigrations(dsn, migrationsDir, func(m *migrate.Migrate) error { return m.Down() })
}

func runMigrations(dsn, migrationsDir string, step func(*migrate.Migrate) error) error {
	m, err := migrate.New(migrationsDir, dsn)
	if err != nil {
		return fmt.Errorf("postgres: create migrator: %w", err)
	}
	defer m.Close()

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres: run migrations: %w", err)
	}
	return nil
}
