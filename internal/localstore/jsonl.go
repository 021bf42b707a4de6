// JSONL export for offline backups. Collections are written one record per
// line using the temp-file, fsync, rename pattern so a crash never leaves a
// half-written export behind.
package localstore

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/despensa-labs/almacen/pkg/types"
)

// ExportJSONL writes the collection for kind to <dataDir>/<kind>.jsonl and
// returns the file path. An empty collection produces an empty file.
func (s *Store) ExportJSONL(ctx context.Context, kind string) (string, error) {
	if !types.IsKnownKind(kind) {
		return "", fmt.Errorf("%w: %s", types.ErrUnknownKind, kind)
	}

	items := s.getCollection(ctx, kind)
	records := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return "", fmt.Errorf("encode %s record: %w", kind, err)
		}
		records = append(records, data)
	}

	path := filepath.Join(s.dataDir, kind+".jsonl")
	if err := writeJSONL(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// writeJSONL atomically writes records to a JSONL file.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
