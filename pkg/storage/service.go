// Package storage provides the record-access facade UI code talks to. It
// resolves the active adapter, normalizes expense records on the way in,
// implements the composite operations (upsert, linked lot+expense
// creation), and degrades gracefully when the bound adapter lacks an
// optional capability.
//
// Composite operations are read-modify-write sequences over whole
// collections. The facade serializes them per entity kind within the
// process; across processes the consistency model remains last-writer-wins
// at whole-collection granularity.
package storage

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/despensa-labs/almacen/internal/localstore"
	"github.com/despensa-labs/almacen/internal/redistore"
	"github.com/despensa-labs/almacen/internal/remote"
	"github.com/despensa-labs/almacen/pkg/types"
)

// nowMillis supplies timestamp-derived identifiers. Overridable in tests.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// Service is the storage facade. It holds no entity data of its own, only
// the reference to the active adapter.
type Service struct {
	mu        sync.Mutex
	adapter   types.Adapter
	kindLocks map[string]*sync.Mutex
}

// New resolves an adapter from the config and returns a bound Service.
// Resolution order when cfg.Adapter is empty: remote (BaseURL set), redis
// (RedisAddr set), local (DataDir set). With nothing to bind it returns
// types.ErrNoAdapter.
func New(cfg types.Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	adapter, err := resolveAdapter(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithAdapter(adapter), nil
}

// NewWithAdapter binds a Service to an already-constructed adapter.
func NewWithAdapter(adapter types.Adapter) *Service {
	return &Service{
		adapter:   adapter,
		kindLocks: make(map[string]*sync.Mutex),
	}
}

func resolveAdapter(cfg types.Config) (types.Adapter, error) {
	name := cfg.Adapter
	if name == "" {
		switch {
		case cfg.BaseURL != "":
			name = types.AdapterRemote
		case cfg.RedisAddr != "":
			name = types.AdapterRedis
		case cfg.DataDir != "":
			name = types.AdapterLocal
		default:
			return nil, types.ErrNoAdapter
		}
	}

	switch name {
	case types.AdapterRemote:
		opts := []remote.Option{}
		if cfg.AuthToken != "" {
			opts = append(opts, remote.WithAuthToken(cfg.AuthToken))
		}
		if cfg.ReportPartialFailures {
			opts = append(opts, remote.WithPartialFailureReporting())
		}
		return remote.New(cfg.BaseURL, opts...), nil
	case types.AdapterRedis:
		return redistore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.Namespace), nil
	case types.AdapterLocal:
		return localstore.Open(cfg.DataDir, cfg.Namespace)
	default:
		return nil, types.ErrAdapterUnknown
	}
}

// SetAdapter rebinds the facade to another adapter.
func (s *Service) SetAdapter(adapter types.Adapter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adapter = adapter
}

// Adapter returns the currently bound adapter, or nil.
func (s *Service) Adapter() types.Adapter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adapter
}

// resolve returns the bound adapter or the configuration error.
func (s *Service) resolve() (types.Adapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adapter == nil {
		return nil, types.ErrNoAdapter
	}
	return s.adapter, nil
}

// lockKind serializes composite operations for one entity kind.
func (s *Service) lockKind(kind string) func() {
	s.mu.Lock()
	l, ok := s.kindLocks[kind]
	if !ok {
		l = &sync.Mutex{}
		s.kindLocks[kind] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// List reads the collection for any entity kind, passing the advisory
// query options through to the adapter. Optional kinds degrade to an empty
// collection when the adapter lacks them.
func (s *Service) List(ctx context.Context, kind string, opts types.QueryOptions) ([]types.Record, error) {
	adapter, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return readKind(ctx, adapter, kind, opts)
}

// SaveCollection rewrites the whole collection for any entity kind.
// Optional kinds degrade to a no-op echo when the adapter lacks them.
func (s *Service) SaveCollection(ctx context.Context, kind string, items []types.Record) ([]types.Record, error) {
	adapter, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return writeKind(ctx, adapter, kind, items)
}

// readKind dispatches a read to the adapter method for kind.
func readKind(ctx context.Context, a types.Adapter, kind string, opts types.QueryOptions) ([]types.Record, error) {
	switch kind {
	case types.KindExpenses:
		return a.GetExpenses(ctx, opts)
	case types.KindExpenseCategories:
		return a.GetExpenseCategories(ctx, opts)
	case types.KindSuppliers:
		return a.GetSuppliers(ctx, opts)
	case types.KindCustomers:
		return a.GetCustomers(ctx, opts)
	case types.KindInventoryProducts:
		return a.GetInventoryProducts(ctx, opts)
	case types.KindInventoryLots:
		return a.GetInventoryLots(ctx, opts)
	case types.KindSales:
		return a.GetSales(ctx, opts)
	case types.KindEmployees:
		if es, ok := a.(types.EmployeeStore); ok {
			return es.GetEmployees(ctx, opts)
		}
		return []types.Record{}, nil
	case types.KindInventoryMovements:
		if ms, ok := a.(types.MovementStore); ok {
			return ms.GetInventoryMovements(ctx, opts)
		}
		return []types.Record{}, nil
	case types.KindCashCounts:
		if cs, ok := a.(types.CashCountSource); ok {
			return cs.GetCashCounts(ctx, opts)
		}
		return []types.Record{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownKind, kind)
	}
}

// writeKind dispatches a whole-collection write to the adapter method for
// kind. Cash counts are a read-only aggregate view; writing them echoes
// the input without action.
func writeKind(ctx context.Context, a types.Adapter, kind string, items []types.Record) ([]types.Record, error) {
	switch kind {
	case types.KindExpenses:
		return a.SaveExpenses(ctx, items)
	case types.KindExpenseCategories:
		return a.SaveExpenseCategories(ctx, items)
	case types.KindSuppliers:
		return a.SaveSuppliers(ctx, items)
	case types.KindCustomers:
		return a.SaveCustomers(ctx, items)
	case types.KindInventoryProducts:
		return a.SaveInventoryProducts(ctx, items)
	case types.KindInventoryLots:
		return a.SaveInventoryLots(ctx, items)
	case types.KindSales:
		return a.SaveSales(ctx, items)
	case types.KindEmployees:
		if es, ok := a.(types.EmployeeStore); ok {
			return es.SaveEmployees(ctx, items)
		}
		return items, nil
	case types.KindInventoryMovements:
		if ms, ok := a.(types.MovementStore); ok {
			return ms.SaveInventoryMovements(ctx, items)
		}
		return items, nil
	case types.KindCashCounts:
		return items, nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownKind, kind)
	}
}

// assignID fills the record's key field with its existing non-empty
// identifier or a fresh timestamp-derived one, and returns the value.
func assignID(rec types.Record, keyField string) string {
	id := types.IDString(rec[keyField])
	if id == "" {
		id = strconv.FormatInt(nowMillis(), 10)
	}
	rec[keyField] = id
	return id
}

// Upsert inserts or replaces one record in the collection for kind:
// normalize (expenses only), read the full collection, assign the
// identifier, replace the entry whose identifier matches by string
// comparison or append, then write the full collection back. Returns the
// record as stored.
func (s *Service) Upsert(ctx context.Context, kind string, rec types.Record) (types.Record, error) {
	if !types.IsKnownKind(kind) {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownKind, kind)
	}
	unlock := s.lockKind(kind)
	defer unlock()
	return s.upsertLocked(ctx, kind, rec)
}

func (s *Service) upsertLocked(ctx context.Context, kind string, rec types.Record) (types.Record, error) {
	adapter, err := s.resolve()
	if err != nil {
		return nil, err
	}

	if kind == types.KindExpenses {
		rec = types.NormalizeExpense(rec)
	} else {
		rec = rec.Clone()
	}

	keyField := types.KeyField(kind)
	id := assignID(rec, keyField)

	items, err := readKind(ctx, adapter, kind, types.QueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", kind, err)
	}

	replaced := false
	for i, existing := range items {
		if types.IDString(existing[keyField]) == id {
			items[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, rec)
	}

	if _, err := writeKind(ctx, adapter, kind, items); err != nil {
		return nil, fmt.Errorf("write %s: %w", kind, err)
	}
	return rec, nil
}

// AddExpenseFromInventory upserts an expense whose origin is forced to
// "inventory" before normalization.
func (s *Service) AddExpenseFromInventory(ctx context.Context, expense types.Record) (types.Record, error) {
	exp := expense.Clone()
	exp["origin"] = types.OriginInventory
	return s.Upsert(ctx, types.KindExpenses, exp)
}

// AddInventoryLotWithExpense appends a lot to the lots collection and,
// when an expense payload is supplied, records a linked inventory expense
// whose origin_ref points at the new lot. The two writes are independent:
// when the expense write fails the lot stays in place and the error is
// returned alongside the stored lot.
func (s *Service) AddInventoryLotWithExpense(ctx context.Context, lot types.Record, expense types.Record) (types.Record, types.Record, error) {
	storedLot, err := s.addLot(ctx, lot)
	if err != nil {
		return nil, nil, err
	}
	if expense == nil {
		return storedLot, nil, nil
	}

	exp := expense.Clone()
	exp["origin_ref"] = types.Record{
		types.RefProductID:  storedLot[types.RefProductID],
		types.RefLotID:      storedLot.ID(),
		types.RefMovementID: nil,
	}
	storedExp, err := s.AddExpenseFromInventory(ctx, exp)
	if err != nil {
		return storedLot, nil, fmt.Errorf("lot stored, linked expense failed: %w", err)
	}
	return storedLot, storedExp, nil
}

// addLot assigns the lot identifier and appends it to the lots collection.
// Unlike Upsert this always appends; lots are never rewritten in place
// through this path.
func (s *Service) addLot(ctx context.Context, lot types.Record) (types.Record, error) {
	unlock := s.lockKind(types.KindInventoryLots)
	defer unlock()

	adapter, err := s.resolve()
	if err != nil {
		return nil, err
	}

	rec := lot.Clone()
	assignID(rec, "id")

	items, err := adapter.GetInventoryLots(ctx, types.QueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", types.KindInventoryLots, err)
	}
	items = append(items, rec)
	if _, err := adapter.SaveInventoryLots(ctx, items); err != nil {
		return nil, fmt.Errorf("write %s: %w", types.KindInventoryLots, err)
	}
	return rec, nil
}
