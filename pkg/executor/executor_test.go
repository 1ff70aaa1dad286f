package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newMockExecutor registers a sqlmock pool under a per-test DSN so the
// executor's open-per-call pattern lands on the same mock.
func newMockExecutor(t *testing.T, dsn string) (*Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.NewWithDSN(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New("sqlmock", dsn, time.Second, zap.NewNop()), mock
}

func TestExecute_ReturnsColumnsAndRows(t *testing.T) {
	exec, mock := newMockExecutor(t, "executor_rows_dsn")

	mock.ExpectQuery("SELECT p.name").WillReturnRows(
		sqlmock.NewRows([]string{"Producto", "Stock"}).
			AddRow("Wrap de Pollo", int64(3)).
			AddRow("Hamburguesa Vegetal", int64(4)))
	mock.ExpectClose()

	result, err := exec.Execute(context.Background(), "SELECT p.name AS Producto, sq.quantity_available AS Stock FROM stock_quant sq")
	require.NoError(t, err)

	assert.Equal(t, []string{"Producto", "Stock"}, result.Columns)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Wrap de Pollo", result.Rows[0]["Producto"])
	assert.Equal(t, int64(3), result.Rows[0]["Stock"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_ZeroRowsIsNotAnError(t *testing.T) {
	exec, mock := newMockExecutor(t, "executor_empty_dsn")

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"Producto", "Stock"}))
	mock.ExpectClose()

	result, err := exec.Execute(context.Background(), "SELECT 1 WHERE 1 = 0")
	require.NoError(t, err)
	assert.Equal(t, []string{"Producto", "Stock"}, result.Columns)
	assert.Empty(t, result.Rows)
	assert.NotNil(t, result.Rows, "empty result keeps a non-nil rows slice")
}

func TestExecute_WrapsExecutionFaults(t *testing.T) {
	exec, mock := newMockExecutor(t, "executor_fault_dsn")

	boom := errors.New("no such table: platos")
	mock.ExpectQuery("SELECT").WillReturnError(boom)
	mock.ExpectClose()

	result, err := exec.Execute(context.Background(), "SELECT * FROM platos")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
}

func TestExecute_ByteColumnsBecomeStrings(t *testing.T) {
	exec, mock := newMockExecutor(t, "executor_bytes_dsn")

	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows([]string{"Categoría", "TotalVentas"}).
			AddRow([]byte("wraps"), 152.4))
	mock.ExpectClose()

	result, err := exec.Execute(context.Background(), "SELECT category, total FROM ventas")
	require.NoError(t, err)
	assert.Equal(t, "wraps", result.Rows[0]["Categoría"])
	assert.Equal(t, 152.4, result.Rows[0]["TotalVentas"])
}

func TestExecute_IsIdempotentForFixedData(t *testing.T) {
	exec, mock := newMockExecutor(t, "executor_idempotent_dsn")

	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows([]string{"Mes", "TotalVentas"}).
				AddRow("2025-01", 102.6).
				AddRow("2025-02", 110.8))
		mock.ExpectClose()
	}

	first, err := exec.Execute(context.Background(), "SELECT mes, total FROM ventas")
	require.NoError(t, err)
	second, err := exec.Execute(context.Background(), "SELECT mes, total FROM ventas")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
