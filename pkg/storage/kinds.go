package storage

import (
	"context"

	"github.com/despensa-labs/almacen/pkg/types"
)

// Per-kind wrappers over List/SaveCollection. UI code calls these; the
// generic pair exists for the CLI, which dispatches on a kind string.

func (s *Service) GetExpenses(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindExpenses, opts)
}

func (s *Service) SaveExpenses(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindExpenses, items)
}

func (s *Service) GetExpenseCategories(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindExpenseCategories, opts)
}

func (s *Service) SaveExpenseCategories(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindExpenseCategories, items)
}

func (s *Service) GetSuppliers(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindSuppliers, opts)
}

func (s *Service) SaveSuppliers(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindSuppliers, items)
}

func (s *Service) GetCustomers(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindCustomers, opts)
}

func (s *Service) SaveCustomers(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindCustomers, items)
}

func (s *Service) GetEmployees(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindEmployees, opts)
}

func (s *Service) SaveEmployees(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindEmployees, items)
}

func (s *Service) GetInventoryProducts(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindInventoryProducts, opts)
}

func (s *Service) SaveInventoryProducts(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindInventoryProducts, items)
}

func (s *Service) GetInventoryLots(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindInventoryLots, opts)
}

func (s *Service) SaveInventoryLots(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindInventoryLots, items)
}

func (s *Service) GetInventoryMovements(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindInventoryMovements, opts)
}

func (s *Service) SaveInventoryMovements(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindInventoryMovements, items)
}

func (s *Service) GetSales(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindSales, opts)
}

func (s *Service) SaveSales(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.SaveCollection(ctx, types.KindSales, items)
}

func (s *Service) GetCashCounts(ctx context.Context, opts types.QueryOptions) ([]types.Record, error) {
	return s.List(ctx, types.KindCashCounts, opts)
}

// OverdueCustomersCount returns the number of customers with debt older
// than days. Adapters without the capability report zero.
func (s *Service) OverdueCustomersCount(ctx context.Context, days int) (int, error) {
	adapter, err := s.resolve()
	if err != nil {
		return 0, err
	}
	os, ok := adapter.(types.OverdueSource)
	if !ok {
		return 0, nil
	}
	return os.GetOverdueCustomersCount(ctx, days)
}
