// Package integration exercises the storage facade end to end through the
// local and remote adapters.
package integration

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/despensa-labs/almacen/internal/localstore"
	"github.com/despensa-labs/almacen/internal/remote"
	"github.com/despensa-labs/almacen/pkg/storage"
	"github.com/despensa-labs/almacen/pkg/types"
)

// setupLocalService binds a facade to a fresh local store in an isolated
// temp directory. Each test gets its own data directory.
func setupLocalService(t *testing.T) (*storage.Service, string) {
	t.Helper()
	dir := t.TempDir()
	svc, err := storage.New(types.Config{Adapter: types.AdapterLocal, DataDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() {
		if store, ok := svc.Adapter().(*localstore.Store); ok {
			_ = store.Close()
		}
	})
	return svc, dir
}

// reopenLocalService opens a second facade over an existing data directory.
func reopenLocalService(t *testing.T, dir string) *storage.Service {
	t.Helper()
	svc, err := storage.New(types.Config{Adapter: types.AdapterLocal, DataDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() {
		if store, ok := svc.Adapter().(*localstore.Store); ok {
			_ = store.Close()
		}
	})
	return svc
}

// setupRemoteService binds a facade to a remote adapter pointed at the
// given test server.
func setupRemoteService(t *testing.T, server *httptest.Server, opts ...remote.Option) *storage.Service {
	t.Helper()
	return storage.NewWithAdapter(remote.New(server.URL, opts...))
}
