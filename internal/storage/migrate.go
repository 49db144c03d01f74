package storage

import (
	"errors"
	"fmt"

	"wordquiz/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	mysqldb "github.com/golang-migrate/migrate/v4/database/mysql"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrate applies all pending migrations from sourceURL
func (g *Gateway) Migrate(sourceURL string, logger *zap.Logger) error {
	driver, err := g.migrationDriver()
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, g.driver, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully", zap.String("source", sourceURL))
	}

	return nil
}

func (g *Gateway) migrationDriver() (database.Driver, error) {
	switch g.driver {
	case config.DriverMySQL:
		return mysqldb.WithInstance(g.db, &mysqldb.Config{})
	case config.DriverPostgres:
		return postgresdb.WithInstance(g.db, &postgresdb.Config{})
	default:
		return nil, fmt.Errorf("unsupported driver %q", g.driver)
	}
}
