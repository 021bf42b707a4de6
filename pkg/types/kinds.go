package types

// Entity kind names. Each kind maps to one collection in the backing store.
const (
	KindExpenses           = "expenses"
	KindExpenseCategories  = "expense_categories"
	KindSuppliers          = "suppliers"
	KindCustomers          = "customers"
	KindEmployees          = "employees"
	KindInventoryProducts  = "inventory_products"
	KindInventoryLots      = "inventory_lots"
	KindInventoryMovements = "inventory_movements"
	KindSales              = "sales"
	KindCashCounts         = "cash_counts"
)

// KnownKinds lists every entity kind, in a stable order suitable for
// iteration and CLI validation.
var KnownKinds = []string{
	KindExpenses,
	KindExpenseCategories,
	KindSuppliers,
	KindCustomers,
	KindEmployees,
	KindInventoryProducts,
	KindInventoryLots,
	KindInventoryMovements,
	KindSales,
	KindCashCounts,
}

// validKinds is the set form of KnownKinds.
var validKinds = func() map[string]bool {
	m := make(map[string]bool, len(KnownKinds))
	for _, k := range KnownKinds {
		m[k] = true
	}
	return m
}()

// IsKnownKind reports whether name is a recognized entity kind.
func IsKnownKind(name string) bool {
	return validKinds[name]
}

// KeyField returns the name of the identifier field for a kind.
// Sales are identified by their ticket; every other kind uses "id".
func KeyField(kind string) string {
	if kind == KindSales {
		return "ticket"
	}
	return "id"
}
