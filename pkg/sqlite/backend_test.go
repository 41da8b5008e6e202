package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/diindiin/pkg/sqlite"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

func TestNewStore_AttachDetach(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := sqlite.NewStore()

	_, err := store.Users().GetByChatID(context.Background(), 1)
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	require.NoError(t, store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	_, err = os.Stat(filepath.Join(dir, sqlite.DBFileName))
	require.NoError(t, err)

	_, err = store.Users().GetByChatID(context.Background(), 1)
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, store.Detach())
	require.NoError(t, store.Detach())
}
