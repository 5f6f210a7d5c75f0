package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_StatementError(t *testing.T) {
	gw := setupTestDB(t)

	_, err := gw.Exec(context.Background(), "INSERT INTO no_such_table (x) VALUES (?)", 1)
	require.Error(t, err)

	var stmtErr *StatementError
	require.True(t, errors.As(err, &stmtErr), "error should be a *StatementError")
	assert.Equal(t, "exec", stmtErr.Op)
	assert.Contains(t, stmtErr.Query, "no_such_table")
	assert.Contains(t, err.Error(), "no_such_table")
}

func TestGateway_QueryRowNoRows(t *testing.T) {
	gw := setupTestDB(t)

	var name string
	err := gw.QueryRow(context.Background(), "SELECT name FROM players WHERE id = ?", 1).Scan(&name)
	require.Error(t, err)

	var stmtErr *StatementError
	assert.False(t, errors.As(err, &stmtErr), "missing rows should not be reported as a statement failure")
}

func TestGateway_WithTx(t *testing.T) {
	gw := setupTestDB(t)
	ctx := context.Background()

	count := func() int {
		var n int
		require.NoError(t, gw.QueryRow(ctx, "SELECT COUNT(*) FROM players").Scan(&n))
		return n
	}

	t.Run("commits when fn succeeds", func(t *testing.T) {
		err := gw.WithTx(ctx, func(tx *Tx) error {
			_, err := tx.Exec(ctx, "INSERT INTO players (name) VALUES (?)", "Alice")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		boom := errors.New("boom")
		err := gw.WithTx(ctx, func(tx *Tx) error {
			if _, err := tx.Exec(ctx, "INSERT INTO players (name) VALUES (?)", "Bob"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, count(), "the insert should have been rolled back")
	})

	t.Run("rolls back and re-panics when fn panics", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = gw.WithTx(ctx, func(tx *Tx) error {
				_, _ = tx.Exec(ctx, "INSERT INTO players (name) VALUES (?)", "Carol")
				panic("unexpected")
			})
		})
		assert.Equal(t, 1, count(), "the insert should have been rolled back")
	})
}
