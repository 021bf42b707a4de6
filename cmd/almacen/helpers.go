// Shared helpers for almacen CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/despensa-labs/almacen/pkg/storage"
	"github.com/despensa-labs/almacen/pkg/types"
)

// validKindsStr is a comma-separated list of valid kind names for error output.
var validKindsStr = strings.Join(types.KnownKinds, ", ")

// openService builds the storage config from flags and config.yaml and
// returns a bound service. When nothing selects an adapter the local
// adapter is used with the resolved data directory, so a bare checkout
// works without configuration.
func openService() (*storage.Service, error) {
	cfg := types.Config{
		Adapter:               firstNonEmpty(flagAdapter, loadedConfig.Adapter),
		Namespace:             firstNonEmpty(flagNamespace, loadedConfig.Namespace),
		BaseURL:               firstNonEmpty(flagBaseURL, loadedConfig.BaseURL),
		AuthToken:             firstNonEmpty(flagAuthToken, loadedConfig.AuthToken),
		RedisAddr:             loadedConfig.RedisAddr,
		RedisPassword:         loadedConfig.RedisPassword,
		RedisDB:               loadedConfig.RedisDB,
		ReportPartialFailures: loadedConfig.ReportPartials,
	}

	needsDataDir := cfg.Adapter == types.AdapterLocal ||
		(cfg.Adapter == "" && cfg.BaseURL == "" && cfg.RedisAddr == "")
	if needsDataDir {
		dataDir, err := resolveDataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = dataDir
	}

	svc, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return svc, nil
}

// closeService releases adapter resources when the adapter holds any.
func closeService(svc *storage.Service) {
	if closer, ok := svc.Adapter().(io.Closer); ok {
		_ = closer.Close()
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// checkKind validates a kind argument with a CLI-friendly error.
func checkKind(kind string) error {
	if !types.IsKnownKind(kind) {
		return fmt.Errorf("%w: %q (valid: %s)", types.ErrUnknownKind, kind, validKindsStr)
	}
	return nil
}

// readRecordArg parses a record from a JSON argument, reading stdin when
// the argument is "-".
func readRecordArg(arg string) (types.Record, error) {
	data := []byte(arg)
	if arg == "-" {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	var rec types.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	return rec, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printRecords writes a collection either as JSON (--json) or as a short
// per-record line keyed by the kind's identifier field.
func printRecords(kind string, items []types.Record) error {
	if flagJSON {
		return printJSON(items)
	}

	keyField := types.KeyField(kind)
	for _, rec := range items {
		fields := make([]string, 0, len(rec))
		for k := range rec {
			if k == keyField {
				continue
			}
			fields = append(fields, k)
		}
		sort.Strings(fields)

		var b strings.Builder
		fmt.Fprintf(&b, "%s=%s", keyField, types.IDString(rec[keyField]))
		for _, k := range fields {
			fmt.Fprintf(&b, " %s=%v", k, rec[k])
		}
		fmt.Println(b.String())
	}
	fmt.Printf("%d record(s)\n", len(items))
	return nil
}
