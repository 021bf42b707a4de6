// Package redistore implements a shared-cache adapter on Redis. It follows
// the same collection semantics as the local adapter, one serialized array
// per namespaced key, so several terminals of the same business can share
// a warm cache. Unlike the local adapter it also carries employees.
package redistore

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/despensa-labs/almacen/pkg/types"
)

// Store is the Redis adapter.
type Store struct {
	client    *redis.Client
	namespace string
}

// Compile-time contract checks.
var (
	_ types.Adapter       = (*Store)(nil)
	_ types.EmployeeStore = (*Store)(nil)
)

// New builds a Redis adapter. The namespace, when non-empty, prefixes every
// key as "ns:<namespace>:".
func New(addr, password string, db int, namespace string) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Store{client: client, namespace: namespace}
}

// Ping verifies connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Name identifies this adapter.
func (s *Store) Name() string {
	return types.AdapterRedis
}

// key maps an entity kind to its storage key.
func (s *Store) key(kind string) string {
	if s.namespace == "" {
		return kind
	}
	return "ns:" + s.namespace + ":" + kind
}

// getCollection reads and decodes a collection. A missing key or a value
// that does not decode to an array yields an empty collection; transport
// errors are surfaced.
func (s *Store) getCollection(ctx context.Context, kind string) ([]types.Record, error) {
	val, err := s.client.Get(ctx, s.key(kind)).Result()
	if err == redis.Nil {
		return []types.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", kind, err)
	}

	var items []types.Record
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return []types.Record{}, nil
	}
	if items == nil {
		items = []types.Record{}
	}
	return items, nil
}

// putCollection serializes and writes a full collection.
func (s *Store) putCollection(ctx context.Context, kind string, items []types.Record) ([]types.Record, error) {
	if items == nil {
		items = []types.Record{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	if err := s.client.Set(ctx, s.key(kind), payload, 0).Err(); err != nil {
		return nil, fmt.Errorf("redis set %s: %w", kind, err)
	}
	return items, nil
}

func (s *Store) GetExpenses(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindExpenses)
}

func (s *Store) SaveExpenses(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindExpenses, items)
}

func (s *Store) GetExpenseCategories(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindExpenseCategories)
}

func (s *Store) SaveExpenseCategories(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindExpenseCategories, items)
}

func (s *Store) GetSuppliers(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindSuppliers)
}

func (s *Store) SaveSuppliers(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindSuppliers, items)
}

func (s *Store) GetCustomers(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindCustomers)
}

func (s *Store) SaveCustomers(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindCustomers, items)
}

func (s *Store) GetInventoryProducts(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindInventoryProducts)
}

func (s *Store) SaveInventoryProducts(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindInventoryProducts, items)
}

func (s *Store) GetInventoryLots(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindInventoryLots)
}

func (s *Store) SaveInventoryLots(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindInventoryLots, items)
}

func (s *Store) GetSales(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindSales)
}

func (s *Store) SaveSales(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindSales, items)
}

func (s *Store) GetEmployees(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindEmployees)
}

func (s *Store) SaveEmployees(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindEmployees, items)
}
