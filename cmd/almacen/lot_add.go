// Lot-add command appends an inventory lot, optionally with a linked expense.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/despensa-labs/almacen/pkg/types"
)

var lotAddExpense string

var lotAddCmd = &cobra.Command{
	Use:   "lot-add <lot-json|->",
	Short: "Append an inventory lot, optionally recording a linked expense",
	Long: `Lot-add assigns the lot an identifier and appends it to the lots
collection. With --expense, an inventory-origin expense is recorded
afterwards with its origin_ref pointing at the new lot. The two writes
are independent: a failed expense write leaves the lot in place.

Example:
  almacen lot-add '{"product_id": "p1", "quantity": 24, "cost": 36.0}'
  almacen lot-add '{"product_id": "p1", "quantity": 24}' \
      --expense '{"amount": 36.0, "category": "mercaderia"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runLotAdd,
}

func init() {
	lotAddCmd.Flags().StringVar(&lotAddExpense, "expense", "", "linked expense record as JSON")
}

func runLotAdd(cmd *cobra.Command, args []string) error {
	lot, err := readRecordArg(args[0])
	if err != nil {
		return err
	}

	var expense types.Record
	if lotAddExpense != "" {
		expense, err = readRecordArg(lotAddExpense)
		if err != nil {
			return err
		}
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	storedLot, storedExp, err := svc.AddInventoryLotWithExpense(cmd.Context(), lot, expense)
	if err != nil {
		if storedLot != nil {
			fmt.Printf("lot %s stored\n", storedLot.ID())
		}
		return err
	}

	out := map[string]any{"lot": storedLot}
	if storedExp != nil {
		out["expense"] = storedExp
	}
	return printJSON(out)
}
