// Package sqlite implements types.Store on a single SQLite database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "diindiin.db"

var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	users       *usersTable
	entries     *entriesTable
	investments *investmentsTable
	habits      *habitsTable
	okrs        *okrTable
	lookup      *lookup
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	b := &Backend{}
	b.users = &usersTable{backend: b}
	b.entries = &entriesTable{backend: b}
	b.investments = &investmentsTable{backend: b}
	b.habits = &habitsTable{backend: b}
	b.okrs = &okrTable{backend: b}
	b.lookup = &lookup{backend: b}
	return b
}

// Attach opens (or creates) DataDir/diindiin.db and applies the schema.
// Existing data is kept. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(filepath.Join(dataDir, DBFileName)))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// One connection serializes writers; SQLite allows a single writer anyway.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// Users implements types.Store.
func (b *Backend) Users() types.UserStore { return b.users }

// Entries implements types.Store.
func (b *Backend) Entries() types.EntryStore { return b.entries }

// Investments implements types.Store.
func (b *Backend) Investments() types.InvestmentStore { return b.investments }

// Habits implements types.Store.
func (b *Backend) Habits() types.HabitStore { return b.habits }

// OKRs implements types.Store.
func (b *Backend) OKRs() types.OKRStore { return b.okrs }

// Lookup implements types.Store.
func (b *Backend) Lookup() types.Lookup { return b.lookup }

// conn returns the open database or ErrStoreDetached.
func (b *Backend) conn() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}

func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + path + "?" + q.Encode()
}
