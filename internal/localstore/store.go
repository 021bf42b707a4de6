// Package localstore implements the local adapter: durable client-side
// storage of whole entity collections in a SQLite database, for offline
// operation. Each (namespace, kind) pair maps to one row holding the
// JSON-serialized collection.
//
// Reads never fail on malformed stored data: a missing row, a JSON parse
// failure, or a non-array value yields an empty collection. Writes replace
// the stored collection verbatim and do surface errors.
package localstore

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/despensa-labs/almacen/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "almacen.db"

// Store is the local adapter. It implements the core types.Adapter
// contract and deliberately omits the optional capabilities (employees,
// movements, cash counts, overdue count); the facade degrades those.
type Store struct {
	db        *sql.DB
	dataDir   string
	namespace string
}

// Compile-time contract check.
var _ types.Adapter = (*Store)(nil)

// Open creates the data directory if needed, opens the SQLite database,
// and applies the schema. The namespace is fixed for the lifetime of the
// store; callers wanting another tenant open another store.
func Open(dataDir, namespace string) (*Store, error) {
	if dataDir == "" {
		return nil, types.ErrDataDirRequired
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, dataDir: dataDir, namespace: namespace}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Name identifies this adapter.
func (s *Store) Name() string {
	return types.AdapterLocal
}

// getCollection reads and decodes the collection stored for kind.
// Any failure resolves to an empty collection, never an error.
func (s *Store) getCollection(ctx context.Context, kind string) []types.Record {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM collections WHERE namespace = ? AND kind = ?",
		s.namespace, kind,
	).Scan(&raw)
	if err != nil {
		return []types.Record{}
	}

	var items []types.Record
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []types.Record{}
	}
	if items == nil {
		items = []types.Record{}
	}
	return items
}

// putCollection serializes and writes the full collection for kind,
// replacing whatever was stored. A nil collection is stored as empty.
func (s *Store) putCollection(ctx context.Context, kind string, items []types.Record) ([]types.Record, error) {
	if items == nil {
		items = []types.Record{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (namespace, kind, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace, kind) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.namespace, kind, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", kind, err)
	}
	return items, nil
}

// GetExpenses returns the cached expense collection. Query options are
// advisory and this adapter ignores them.
func (s *Store) GetExpenses(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindExpenses), nil
}

func (s *Store) SaveExpenses(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindExpenses, items)
}

func (s *Store) GetExpenseCategories(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindExpenseCategories), nil
}

func (s *Store) SaveExpenseCategories(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindExpenseCategories, items)
}

func (s *Store) GetSuppliers(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindSuppliers), nil
}

func (s *Store) SaveSuppliers(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindSuppliers, items)
}

func (s *Store) GetCustomers(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindCustomers), nil
}

func (s *Store) SaveCustomers(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindCustomers, items)
}

func (s *Store) GetInventoryProducts(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindInventoryProducts), nil
}

func (s *Store) SaveInventoryProducts(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindInventoryProducts, items)
}

func (s *Store) GetInventoryLots(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindInventoryLots), nil
}

func (s *Store) SaveInventoryLots(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindInventoryLots, items)
}

func (s *Store) GetSales(ctx context.Context, _ types.QueryOptions) ([]types.Record, error) {
	return s.getCollection(ctx, types.KindSales), nil
}

func (s *Store) SaveSales(ctx context.Context, items []types.Record) ([]types.Record, error) {
	return s.putCollection(ctx, types.KindSales, items)
}
