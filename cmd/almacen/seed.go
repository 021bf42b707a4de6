// Seed command replaces a whole collection from a JSON file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/despensa-labs/almacen/pkg/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed <kind> <file.json>",
	Short: "Replace a collection from a JSON file",
	Long: `Seed replaces the full collection for one entity kind with the array
of records in the given JSON file. On the remote adapter the catalog
kinds use the bulk replace endpoints.

Example:
  almacen seed suppliers suppliers.json
  almacen seed inventory_products catalog.json`,
	Args: cobra.ExactArgs(2),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if err := checkKind(kind); err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var items []types.Record
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	stored, err := svc.SaveCollection(cmd.Context(), kind, items)
	if err != nil {
		return err
	}

	fmt.Printf("seeded %s with %d record(s)\n", kind, len(stored))
	return nil
}
