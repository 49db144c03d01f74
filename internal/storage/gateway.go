// Package storage owns the database connection pool and raw statement execution.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"wordquiz/internal/config"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var placeholderPattern = regexp.MustCompile(`\$\d+`)

// Gateway executes parameterized statements against a *sql.DB.
// Statements are written with $N placeholders and rebound for MySQL.
type Gateway struct {
	db     *sql.DB
	driver string
}

// New wraps an already opened database handle
func New(db *sql.DB, driver string) *Gateway {
	return &Gateway{db: db, driver: driver}
}

// Open connects to the configured database with retries and tunes the pool
func Open(cfg config.DatabaseConfig, logger *zap.Logger) (*Gateway, error) {
	var db *sql.DB
	var err error

	maxRetries := cfg.ConnectRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open(cfg.Driver, cfg.DSN())
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.String("driver", cfg.Driver),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.String("driver", cfg.Driver),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

		return New(db, cfg.Driver), nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// Rebind converts $N placeholders to the driver's placeholder syntax
func (g *Gateway) Rebind(query string) string {
	if g.driver != config.DriverMySQL {
		return query
	}
	return placeholderPattern.ReplaceAllString(query, "?")
}

// Exec runs a statement and returns the number of affected rows
func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := g.db.ExecContext(ctx, g.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Query runs a statement that returns rows. The caller must close them.
func (g *Gateway) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return g.db.QueryContext(ctx, g.Rebind(query), args...)
}

// QueryRow runs a statement that returns at most one row
func (g *Gateway) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return g.db.QueryRowContext(ctx, g.Rebind(query), args...)
}

// Insert runs an INSERT statement and returns the generated id.
// Postgres reads it back with RETURNING, MySQL through LastInsertId.
func (g *Gateway) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	if g.driver == config.DriverMySQL {
		res, err := g.db.ExecContext(ctx, g.Rebind(query), args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	var id int64
	err := g.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id)
	return id, err
}

// Ping checks the database connection
func (g *Gateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

// Close closes the pool. Connections in use are closed once released.
func (g *Gateway) Close() error {
	return g.db.Close()
}
