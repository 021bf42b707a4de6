// Export command writes a local collection to a JSONL file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/despensa-labs/almacen/internal/localstore"
)

var exportCmd = &cobra.Command{
	Use:   "export <kind>",
	Short: "Export a collection to a JSONL file in the data directory",
	Long: `Export writes every record of the collection as one JSON object per
line to <data-dir>/<kind>.jsonl. Only the local adapter supports export.

Example:
  almacen export expenses
  almacen export sales --data-dir /srv/almacen`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if err := checkKind(kind); err != nil {
		return err
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	store, ok := svc.Adapter().(*localstore.Store)
	if !ok {
		return fmt.Errorf("export requires the local adapter, have %q", svc.Adapter().Name())
	}

	path, err := store.ExportJSONL(cmd.Context(), kind)
	if err != nil {
		return err
	}

	fmt.Printf("exported %s to %s\n", kind, path)
	return nil
}
