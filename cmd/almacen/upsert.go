// Upsert command inserts or replaces one record in a collection.
package main

import (
	"github.com/spf13/cobra"
)

var upsertCmd = &cobra.Command{
	Use:   "upsert <kind> <json|->",
	Short: "Insert or replace one record",
	Long: `Upsert inserts the record into the collection for the given kind,
replacing an existing record with the same identifier. A missing
identifier is assigned from the current time. Expenses are normalized
on the way in. Pass "-" to read the record from stdin.

Example:
  almacen upsert suppliers '{"name": "Acme Mayorista"}'
  almacen upsert expenses '{"amount": 1200, "category": "rent"}'
  cat sale.json | almacen upsert sales -`,
	Args: cobra.ExactArgs(2),
	RunE: runUpsert,
}

func runUpsert(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if err := checkKind(kind); err != nil {
		return err
	}

	rec, err := readRecordArg(args[1])
	if err != nil {
		return err
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	stored, err := svc.Upsert(cmd.Context(), kind, rec)
	if err != nil {
		return err
	}
	return printJSON(stored)
}
