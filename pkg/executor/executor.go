// Package executor runs SQL statements against the snapshot and returns
// rows plus column names. Each call opens its own connection and closes it
// unconditionally; no cursor or transaction state crosses request
// boundaries.
package executor

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultQueryTimeout bounds a single statement execution when the caller
// does not configure one.
const DefaultQueryTimeout = 10 * time.Second

// QueryResult holds an executed query's column names and rows. Rows map
// column name to value and preserve result order. Zero rows with a nil
// error means the query legitimately matched nothing.
type QueryResult struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// Executor executes statements against a fixed driver/DSN pair. It holds no
// open connection; Execute is safe for concurrent use.
type Executor struct {
	driver  string
	dsn     string
	timeout time.Duration
	logger  *zap.Logger
}

// New creates an executor. A timeout <= 0 falls back to
// DefaultQueryTimeout.
func New(driver, dsn string, timeout time.Duration, logger *zap.Logger) *Executor {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return &Executor{
		driver:  driver,
		dsn:     dsn,
		timeout: timeout,
		logger:  logger.Named("executor"),
	}
}

// Execute runs the statement exactly as provided and returns all rows with
// their column names. Execution faults (malformed SQL, missing table, type
// mismatch) come back as a wrapped error, never a panic. A successful query
// with no matching rows returns a result with an empty Rows slice.
func (e *Executor) Execute(ctx context.Context, sqlQuery string) (*QueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	db, err := sql.Open(e.driver, e.dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot connection: %w", err)
	}
	defer db.Close()

	start := time.Now()
	rows, err := db.QueryContext(ctx, sqlQuery)
	if err != nil {
		e.logger.Warn("query failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read result columns: %w", err)
	}

	result := &QueryResult{
		Columns: columns,
		Rows:    []map[string]any{},
	}
	for rows.Next() {
		vals := make([]any, len(columns))
		valPtrs := make([]any, len(columns))
		for i := range columns {
			valPtrs[i] = &vals[i]
		}
		if err := rows.Scan(valPtrs...); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			// The sqlite driver hands text columns back as []byte.
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = vals[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result rows: %w", err)
	}

	e.logger.Debug("query executed",
		zap.Int("rows", len(result.Rows)),
		zap.Int("columns", len(columns)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// Value returns the value of the given column in the given row, in result
// order. Helper for callers that need positional access.
func (r *QueryResult) Value(rowIdx int, col string) any {
	if rowIdx < 0 || rowIdx >= len(r.Rows) {
		return nil
	}
	return r.Rows[rowIdx][col]
}
