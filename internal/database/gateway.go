package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrConnection is returned when the store could not be reached within the retry budget.
var ErrConnection = errors.New("database connection failed")

// StatementError reports a statement the store refused to run.
type StatementError struct {
	Op    string
	Query string
	Err   error
}

func (e *StatementError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Query, e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

func statementFailed(op, query string, err error) error {
	query = strings.Join(strings.Fields(query), " ")
	log.Error("Statement failed", "op", op, "query", query, "error", err)
	return &StatementError{Op: op, Query: query, Err: err}
}

// Gateway is the single path from the services to the relational store.
// Every failure is logged here so callers only need to propagate it.
type Gateway struct {
	db *sql.DB
}

// NewGateway wraps an already opened pool.
func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{db: db}
}

// DB exposes the pool for tests and tooling.
func (g *Gateway) DB() *sql.DB {
	return g.db
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, statementFailed("exec", query, err)
	}
	return res, nil
}

func (g *Gateway) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, statementFailed("query", query, err)
	}
	return rows, nil
}

func (g *Gateway) QueryRow(ctx context.Context, query string, args ...any) *Row {
	return &Row{row: g.db.QueryRowContext(ctx, query, args...), query: query}
}

// WithTx runs fn inside a transaction. The transaction is committed when fn returns nil
// and rolled back otherwise, including when fn panics.
func (g *Gateway) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	sqlTx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return statementFailed("begin", "", err)
	}
	defer func() {
		if p := recover(); p != nil {
			sqlTx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Tx{tx: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			log.Error("Failed to roll back transaction", "error", rbErr)
		}
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return statementFailed("commit", "", err)
	}
	return nil
}

// Tx mirrors the Gateway statement helpers inside a transaction.
type Tx struct {
	tx *sql.Tx
}

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, statementFailed("exec", query, err)
	}
	return res, nil
}

func (t *Tx) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, statementFailed("query", query, err)
	}
	return rows, nil
}

func (t *Tx) QueryRow(ctx context.Context, query string, args ...any) *Row {
	return &Row{row: t.tx.QueryRowContext(ctx, query, args...), query: query}
}

// Row defers error reporting to Scan, like sql.Row. sql.ErrNoRows is returned as is
// and not logged, since "no such row" is usually a domain answer rather than a failure.
type Row struct {
	row   *sql.Row
	query string
}

func (r *Row) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return statementFailed("query row", r.query, err)
}
