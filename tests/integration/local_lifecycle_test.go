package integration

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/despensa-labs/almacen/internal/localstore"
	"github.com/despensa-labs/almacen/pkg/storage"
	"github.com/despensa-labs/almacen/pkg/types"
)

func TestLocalUpsertSurvivesReopen(t *testing.T) {
	svc, dir := setupLocalService(t)
	ctx := context.Background()

	stored, err := svc.Upsert(ctx, types.KindSuppliers, types.Record{"name": "Acme Mayorista"})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID())

	if store, ok := svc.Adapter().(*localstore.Store); ok {
		require.NoError(t, store.Close())
	}

	svc2 := reopenLocalService(t, dir)
	items, err := svc2.GetSuppliers(ctx, types.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme Mayorista", items[0]["name"])
	assert.Equal(t, stored.ID(), items[0].ID())
}

func TestLocalUpsertReplacesAcrossKinds(t *testing.T) {
	svc, _ := setupLocalService(t)
	ctx := context.Background()

	for _, kind := range []string{
		types.KindExpenseCategories,
		types.KindSuppliers,
		types.KindCustomers,
		types.KindInventoryProducts,
	} {
		first, err := svc.Upsert(ctx, kind, types.Record{"name": "v1"})
		require.NoError(t, err, kind)

		_, err = svc.Upsert(ctx, kind, types.Record{"id": first.ID(), "name": "v2"})
		require.NoError(t, err, kind)

		items, err := svc.List(ctx, kind, types.QueryOptions{})
		require.NoError(t, err, kind)
		require.Len(t, items, 1, kind)
		assert.Equal(t, "v2", items[0]["name"], kind)
	}
}

func TestLocalSalesRoundtripKeepsFloat(t *testing.T) {
	svc, _ := setupLocalService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, types.KindSales, types.Record{"ticket": "T-100", "total": 42.5})
	require.NoError(t, err)

	items, err := svc.GetSales(ctx, types.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "T-100", items[0].Ticket())
	// JSON roundtrip decodes numerics as float64.
	assert.Equal(t, 42.5, items[0]["total"])
}

func TestLocalExpenseNormalizedOnWrite(t *testing.T) {
	svc, _ := setupLocalService(t)
	ctx := context.Background()

	stored, err := svc.Upsert(ctx, types.KindExpenses, types.Record{
		"amount": 18.0,
		"origin": "Desde_Inventario",
	})
	require.NoError(t, err)
	assert.Equal(t, types.OriginInventory, stored["origin"])

	items, err := svc.GetExpenses(ctx, types.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, types.OriginInventory, items[0]["origin"])
	assert.Contains(t, items[0], "created_at")
	assert.Contains(t, items[0], "origin_ref")
}

func TestLocalLotWithExpenseComposite(t *testing.T) {
	svc, _ := setupLocalService(t)
	ctx := context.Background()

	lot, exp, err := svc.AddInventoryLotWithExpense(ctx,
		types.Record{"product_id": "p1", "quantity": 12.0, "cost": 30.0},
		types.Record{"amount": 30.0, "category": "mercaderia"})
	require.NoError(t, err)
	require.NotEmpty(t, lot.ID())

	lots, err := svc.GetInventoryLots(ctx, types.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, lots, 1)

	expenses, err := svc.GetExpenses(ctx, types.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, expenses, 1)

	ref, ok := expenses[0]["origin_ref"].(map[string]any)
	require.True(t, ok, "origin_ref shape: %T", expenses[0]["origin_ref"])
	assert.Equal(t, "p1", ref[types.RefProductID])
	assert.Equal(t, exp["origin_ref"].(types.Record)[types.RefLotID], types.IDString(ref[types.RefLotID]))
	assert.Nil(t, ref[types.RefMovementID])
}

func TestLocalOptionalKindsDegrade(t *testing.T) {
	svc, _ := setupLocalService(t)
	ctx := context.Background()

	for _, kind := range []string{types.KindEmployees, types.KindInventoryMovements, types.KindCashCounts} {
		items, err := svc.List(ctx, kind, types.QueryOptions{})
		require.NoError(t, err, kind)
		assert.Empty(t, items, kind)
	}

	count, err := svc.OverdueCustomersCount(ctx, 30)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLocalNamespaceIsolationThroughFacade(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svcA, err := storage.New(types.Config{Adapter: types.AdapterLocal, DataDir: dir, Namespace: "tienda-a"})
	require.NoError(t, err)
	defer svcA.Adapter().(*localstore.Store).Close()

	svcB, err := storage.New(types.Config{Adapter: types.AdapterLocal, DataDir: dir, Namespace: "tienda-b"})
	require.NoError(t, err)
	defer svcB.Adapter().(*localstore.Store).Close()

	_, err = svcA.Upsert(ctx, types.KindCustomers, types.Record{"name": "solo-a"})
	require.NoError(t, err)

	itemsB, err := svcB.GetCustomers(ctx, types.QueryOptions{})
	require.NoError(t, err)
	assert.Empty(t, itemsB)

	itemsA, err := svcA.GetCustomers(ctx, types.QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, itemsA, 1)
}

func TestLocalExportJSONL(t *testing.T) {
	svc, _ := setupLocalService(t)
	ctx := context.Background()

	for _, name := range []string{"one", "two", "three"} {
		_, err := svc.Upsert(ctx, types.KindSuppliers, types.Record{"name": name, "id": name})
		require.NoError(t, err)
	}

	store := svc.Adapter().(*localstore.Store)
	path, err := store.ExportJSONL(ctx, types.KindSuppliers)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
}
