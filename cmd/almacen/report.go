// Report commands compute aggregates over collections.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/despensa-labs/almacen/pkg/reports"
	"github.com/despensa-labs/almacen/pkg/types"
)

var (
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summary reports over stored records",
}

var reportExpensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Total expenses by category and origin",
	Args:  cobra.NoArgs,
	RunE:  runReportExpenses,
}

var reportCashCmd = &cobra.Command{
	Use:   "cash-counts",
	Short: "Expected versus counted cash",
	Args:  cobra.NoArgs,
	RunE:  runReportCash,
}

func init() {
	reportCmd.PersistentFlags().StringVar(&reportFrom, "from", "", "start date (YYYY-MM-DD)")
	reportCmd.PersistentFlags().StringVar(&reportTo, "to", "", "end date (YYYY-MM-DD)")
	reportCmd.AddCommand(reportExpensesCmd)
	reportCmd.AddCommand(reportCashCmd)
}

func runReportExpenses(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	items, err := svc.GetExpenses(cmd.Context(), types.QueryOptions{From: reportFrom, To: reportTo})
	if err != nil {
		return err
	}

	sum := reports.SummarizeExpenses(items)
	if flagJSON {
		return printJSON(sum)
	}

	fmt.Printf("expenses: %d record(s), total %s\n", sum.Count, sum.Total)
	for _, category := range sum.Categories() {
		fmt.Printf("  %-24s %s\n", category, sum.ByCategory[category])
	}
	origins := make([]string, 0, len(sum.ByOrigin))
	for origin := range sum.ByOrigin {
		origins = append(origins, origin)
	}
	sort.Strings(origins)
	for _, origin := range origins {
		fmt.Printf("  origin %-17s %s\n", origin, sum.ByOrigin[origin])
	}
	return nil
}

func runReportCash(cmd *cobra.Command, args []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	items, err := svc.GetCashCounts(cmd.Context(), types.QueryOptions{From: reportFrom, To: reportTo})
	if err != nil {
		return err
	}

	sum := reports.SummarizeCashCounts(items)
	if flagJSON {
		return printJSON(sum)
	}

	fmt.Printf("cash counts: %d record(s)\n", sum.Count)
	fmt.Printf("  expected   %s\n", sum.Expected)
	fmt.Printf("  counted    %s\n", sum.Counted)
	fmt.Printf("  difference %s\n", sum.Difference)
	return nil
}
