package types

import (
	"context"
	"errors"
)

// Adapter is the contract every backing store implements for the core
// entity kinds. Reads take advisory QueryOptions; an adapter that ignores
// them must still return a correct, if unfiltered, collection. Saves are
// whole-collection rewrites, not merges: the given collection fully
// replaces the stored one, and the adapter echoes the collection it
// persisted (which may differ when the store assigns fields).
//
// Optional entity kinds live on separate capability interfaces below; the
// storage facade probes for them with type assertions and degrades
// gracefully when an adapter lacks one.
type Adapter interface {
	// Name identifies the adapter ("local", "redis", "remote").
	Name() string

	GetExpenses(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveExpenses(ctx context.Context, items []Record) ([]Record, error)

	GetExpenseCategories(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveExpenseCategories(ctx context.Context, items []Record) ([]Record, error)

	GetSuppliers(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveSuppliers(ctx context.Context, items []Record) ([]Record, error)

	GetCustomers(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveCustomers(ctx context.Context, items []Record) ([]Record, error)

	GetInventoryProducts(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveInventoryProducts(ctx context.Context, items []Record) ([]Record, error)

	GetInventoryLots(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveInventoryLots(ctx context.Context, items []Record) ([]Record, error)

	GetSales(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveSales(ctx context.Context, items []Record) ([]Record, error)
}

// EmployeeStore is the optional employee capability.
type EmployeeStore interface {
	GetEmployees(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveEmployees(ctx context.Context, items []Record) ([]Record, error)
}

// MovementStore is the optional inventory-movement capability.
type MovementStore interface {
	GetInventoryMovements(ctx context.Context, opts QueryOptions) ([]Record, error)
	SaveInventoryMovements(ctx context.Context, items []Record) ([]Record, error)
}

// CashCountSource is the optional read-only cash-count capability.
type CashCountSource interface {
	GetCashCounts(ctx context.Context, opts QueryOptions) ([]Record, error)
}

// OverdueSource is the optional overdue-customers aggregate capability.
// The result is a single count, not a collection.
type OverdueSource interface {
	GetOverdueCustomersCount(ctx context.Context, days int) (int, error)
}

// Adapter resolution and dispatch errors.
var (
	ErrNoAdapter   = errors.New("no storage adapter available")
	ErrUnknownKind = errors.New("unknown entity kind")
)
