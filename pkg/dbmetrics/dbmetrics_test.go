package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExecutor_FallbackWithoutTx(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DBExecutor(db), GetExecutor(context.Background(), db))
	assert.False(t, IsInTransaction(context.Background()))
}

func TestGetExecutor_UsesTxFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	wrapped := Wrap(db, nil)
	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(ctx, wrapped))

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("  SELECT id FROM rooms"))
	assert.Equal(t, "unknown", operationOf(""))
}
