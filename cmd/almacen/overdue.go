// Overdue command reports the count of customers with aged debt.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var overdueDays int

var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "Count customers with debt older than a threshold",
	Long: `Overdue reports how many customers carry debt older than the given
number of days. Only the remote adapter computes this; other adapters
report zero.

Example:
  almacen overdue --days 30`,
	Args: cobra.NoArgs,
	RunE: runOverdue,
}

func init() {
	overdueCmd.Flags().IntVar(&overdueDays, "days", 30, "age threshold in days")
}

func runOverdue(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	count, err := svc.OverdueCustomersCount(cmd.Context(), overdueDays)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]int{"count": count})
	}
	fmt.Printf("%d customer(s) overdue past %d day(s)\n", count, overdueDays)
	return nil
}
