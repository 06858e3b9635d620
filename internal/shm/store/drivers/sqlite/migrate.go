package sqlite

import (
	"errors"

	"github.com/aussiebroadwan/shm/internal/shm/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"
)

// ApplyMigrations applies any pending migrations embedded in the binary to
// the Store's database. It is safe to call on an up-to-date database.
func (s *Store) ApplyMigrations() error {
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return mapError("apply migrations", err)
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return mapError("apply migrations", err)
	}

	// Don't Close the instance, it would close the shared *sql.DB.
	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return mapError("apply migrations", err)
	}

	return nil
}
