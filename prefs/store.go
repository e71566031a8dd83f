package prefs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// Well-known preference keys. Each value is a JSON-encoded string array
// written as a unit; there are no partial updates and no schema versioning.
const (
	KeyHomeModeFilters = "home.mode-filters"
	KeyLineMapFilters  = "linemap.line-filters"
)

// DefaultHomeModes is the mode set searched when no preference is stored.
var DefaultHomeModes = []string{"tube", "overground", "elizabeth-line", "dlr", "bus"}

// DefaultLineMapLines is the line set drawn when no preference is stored.
var DefaultLineMapLines = []string{
	"bakerloo", "central", "circle", "district", "hammersmith-city",
	"jubilee", "metropolitan", "northern", "piccadilly", "victoria",
	"waterloo-city", "london-overground", "elizabeth", "dlr",
}

// Store is a durable key/value preference store. All access goes through a
// mutex; preference writes are read-modify-write and must not race.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (creating if needed) the preference database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating prefs table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HomeModeFilters returns the stored home mode filter set, or the default
// set if absent or corrupt.
func (s *Store) HomeModeFilters() []string {
	return s.get(KeyHomeModeFilters, DefaultHomeModes)
}

// SetHomeModeFilters stores the home mode filter set.
func (s *Store) SetHomeModeFilters(modes []string) error {
	return s.set(KeyHomeModeFilters, modes)
}

// LineMapFilters returns the stored line map filter set, or the default set
// if absent or corrupt.
func (s *Store) LineMapFilters() []string {
	return s.get(KeyLineMapFilters, DefaultLineMapLines)
}

// SetLineMapFilters stores the line map filter set.
func (s *Store) SetLineMapFilters(lines []string) error {
	return s.set(KeyLineMapFilters, lines)
}

func (s *Store) get(key string, def []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var blob []byte
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return copyOf(def)
	}
	if err != nil {
		return copyOf(def)
	}
	var values []string
	if err := json.Unmarshal(blob, &values); err != nil {
		return copyOf(def)
	}
	return values
}

func (s *Store) set(key string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding preference %s: %w", key, err)
	}
	_, err = s.db.Exec(`INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, blob)
	if err != nil {
		return fmt.Errorf("storing preference %s: %w", key, err)
	}
	return nil
}

func copyOf(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
