package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const DefaultRetryInterval = time.Second

// Options describes where the store lives and how hard InitDB tries to reach it.
type Options struct {
	// Path is the local SQLite file, or ":memory:". Ignored when PrimaryURL is set.
	Path       string
	PrimaryURL string
	AuthToken  string

	RetryInterval time.Duration
	// MaxRetries of zero means a single attempt.
	MaxRetries uint64
	// OnConnectError is called for every failed connection attempt.
	OnConnectError func(attempt uint64, err error)
}

// InitDB opens the store, waits for it to become reachable and brings the schema up to date.
// The returned teardown closes the underlying connection pool.
func InitDB(ctx context.Context, opts Options) (*Gateway, func(), error) {
	driver, dsn, dialect := dataSource(opts)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == "sqlite3" {
		// SQLite allows a single writer, and every ":memory:" connection is its own database.
		db.SetMaxOpenConns(1)
	}

	if err := connect(ctx, db, opts); err != nil {
		db.Close()
		return nil, nil, err
	}

	// Foreign key support is not enabled by default in SQLite
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		log.Error("Error enabling foreign keys", "error", err)
		db.Close()
		return nil, nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := migrate(db, dialect); err != nil {
		db.Close()
		return nil, nil, err
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	log.Info("Database initialized successfully", "driver", driver)
	return NewGateway(db), teardown, nil
}

func dataSource(opts Options) (driver, dsn, dialect string) {
	if opts.PrimaryURL != "" {
		log.Info("Initializing Turso database", "url", opts.PrimaryURL)
		dsn = opts.PrimaryURL
		if opts.AuthToken != "" {
			dsn += "?authToken=" + opts.AuthToken
		}
		return "libsql", dsn, "turso"
	}
	log.Info("Initializing local-only SQLite database", "path", opts.Path)
	return "sqlite3", "file:" + opts.Path + "?_foreign_keys=on", "sqlite3"
}

// connect pings the store until it answers, at most MaxRetries+1 times, and stops when ctx is done.
func connect(ctx context.Context, db *sql.DB, opts Options) error {
	interval := opts.RetryInterval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}
	maxRetries := opts.MaxRetries

	var attempt uint64
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(interval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := db.PingContext(ctx); err != nil {
			log.Warn("Cannot connect. Retrying...", "attempt", attempt, "max_retries", maxRetries, "error", err)
			if opts.OnConnectError != nil {
				opts.OnConnectError(attempt, err)
			}
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Error("Giving up on database connection", "attempts", attempt, "error", err)
		return fmt.Errorf("%w after %d attempts: %w", ErrConnection, attempt, err)
	}
	return nil
}

func migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log.StandardLog())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect %s: %w", dialect, err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
