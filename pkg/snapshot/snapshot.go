// Package snapshot provisions and describes the read-only SQLite dataset
// backing all queries. The database file is created once from an embedded
// seed script; the engine never writes to it afterwards.
package snapshot

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"net/url"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

//go:embed seed.sql
var seedScript string

// Driver is the database/sql driver name used for the snapshot.
const Driver = "sqlite3"

// Snapshot locates the SQLite file and can provision it from the seed
// script when missing.
type Snapshot struct {
	path   string
	logger *zap.Logger
}

// New creates a snapshot rooted at the given file path.
func New(path string, logger *zap.Logger) *Snapshot {
	return &Snapshot{path: path, logger: logger.Named("snapshot")}
}

// Path returns the snapshot file path.
func (s *Snapshot) Path() string {
	return s.path
}

// DSN returns a read-only connection string for the snapshot. Every query
// opens its own connection against this DSN; mode=ro makes accidental
// writes a driver error rather than a data corruption.
func (s *Snapshot) DSN() string {
	return fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", url.PathEscape(s.path))
}

// Bootstrap creates and seeds the database file if it does not exist yet.
// An existing file is left untouched. A failed seed removes the partial
// file so the next start can retry.
func (s *Snapshot) Bootstrap(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		s.logger.Debug("snapshot already provisioned", zap.String("path", s.path))
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat snapshot file: %w", err)
	}

	db, err := sql.Open(Driver, s.path)
	if err != nil {
		return fmt.Errorf("open snapshot for seeding: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, seedScript); err != nil {
		db.Close()
		os.Remove(s.path)
		return fmt.Errorf("seed snapshot: %w", err)
	}

	s.logger.Info("snapshot provisioned", zap.String("path", s.path))
	return nil
}
