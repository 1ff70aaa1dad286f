// Package catalog holds the fixed set of supported business questions and
// their hand-written SQL. The catalog is built once at startup and is
// read-only afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/bocado-labs/consulta-engine/pkg/apperrors"
)

// Entry pairs a canonical natural-language question with the SQL that
// answers it. SQL statements are complete, parameterless SELECTs.
type Entry struct {
	ID          string
	Question    string
	SQL         string
	Description string
}

// Catalog is an immutable, ordered collection of entries.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// Load builds the catalog from the built-in entry set. A malformed entry
// (empty field or duplicate id) returns an error; callers treat this as
// fatal at startup.
func Load() (*Catalog, error) {
	return New(builtinEntries)
}

// New builds a catalog from the given entries, preserving their order.
// Exposed so tests can construct smaller catalogs.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if strings.TrimSpace(e.ID) == "" {
			return nil, fmt.Errorf("catalog entry %d: empty id", i)
		}
		if strings.TrimSpace(e.Question) == "" {
			return nil, fmt.Errorf("catalog entry %q: empty question", e.ID)
		}
		if strings.TrimSpace(e.SQL) == "" {
			return nil, fmt.Errorf("catalog entry %q: empty sql", e.ID)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", e.ID)
		}
		c.entries[i] = e
		c.byID[e.ID] = i
	}
	return c, nil
}

// All returns the entries in definition order.
func (c *Catalog) All() []Entry {
	return c.entries
}

// Get returns the entry with the given id, or apperrors.ErrNotFound.
func (c *Catalog) Get(id string) (Entry, error) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("catalog entry %q: %w", id, apperrors.ErrNotFound)
	}
	return c.entries[i], nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
