// Package sqlite exposes the SQLite store to programs outside this module
// while keeping the implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/diindiin/internal/sqlite"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = sqlite.DBFileName

// NewStore creates a SQLite store. The store is not attached; call Attach
// with a Config to open it.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".diindiin-db",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewBackend()
}
