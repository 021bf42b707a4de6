// List command reads a collection with optional query filters.
package main

import (
	"github.com/spf13/cobra"

	"github.com/despensa-labs/almacen/pkg/types"
)

var (
	listFrom      string
	listTo        string
	listCategory  string
	listQuery     string
	listProductID string
	listLimit     int
	listActive    bool
	listReplaced  bool
	listExcludeCC bool
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List the records of one collection",
	Long: `List reads the full collection for one entity kind.

Query flags are advisory: the remote adapter applies them server side,
the local and redis adapters return the whole collection.

Valid kinds: expenses, expense_categories, suppliers, customers,
employees, inventory_products, inventory_lots, inventory_movements,
sales, cash_counts

Example:
  almacen list suppliers
  almacen list expenses --from 2026-08-01 --to 2026-08-31 --category rent
  almacen list sales --from 2026-08-01 --limit 50 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "end date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "expense category filter")
	listCmd.Flags().StringVar(&listQuery, "query", "", "free-text filter")
	listCmd.Flags().StringVar(&listProductID, "product-id", "", "product filter for lots and movements")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum records to return (0 = no limit)")
	listCmd.Flags().BoolVar(&listActive, "active", false, "only active products")
	listCmd.Flags().BoolVar(&listReplaced, "include-replaced", false, "include replaced sales")
	listCmd.Flags().BoolVar(&listExcludeCC, "exclude-cc", false, "exclude card-paid sales")
}

func runList(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if err := checkKind(kind); err != nil {
		return err
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	opts := types.QueryOptions{
		From:            listFrom,
		To:              listTo,
		Category:        listCategory,
		Query:           listQuery,
		ProductID:       listProductID,
		Limit:           listLimit,
		IncludeReplaced: listReplaced,
		ExcludeCC:       listExcludeCC,
	}
	if cmd.Flags().Changed("active") {
		opts.Active = &listActive
	}

	items, err := svc.List(cmd.Context(), kind, opts)
	if err != nil {
		return err
	}
	return printRecords(kind, items)
}
