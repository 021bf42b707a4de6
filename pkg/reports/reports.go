// Package reports computes read-only aggregates over record collections.
// Money math uses decimal arithmetic so category totals sum exactly to the
// grand total regardless of how the amounts were entered.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/despensa-labs/almacen/pkg/types"
)

// ExpenseSummary aggregates a slice of expense records.
type ExpenseSummary struct {
	Count      int                        `json:"count"`
	Total      decimal.Decimal            `json:"total"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	ByOrigin   map[string]decimal.Decimal `json:"by_origin"`
}

// CashCountSummary aggregates a slice of cash count records.
type CashCountSummary struct {
	Count      int             `json:"count"`
	Expected   decimal.Decimal `json:"expected"`
	Counted    decimal.Decimal `json:"counted"`
	Difference decimal.Decimal `json:"difference"`
}

// amountOf extracts a money field from a record, tolerating the numeric
// and string shapes JSON decoding produces. Absent or unparsable values
// count as zero.
func amountOf(rec types.Record, field string) decimal.Decimal {
	switch v := rec[field].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// SummarizeExpenses totals a collection of expenses, broken down by
// category and by origin. Expenses without a category are grouped under
// "uncategorized".
func SummarizeExpenses(items []types.Record) ExpenseSummary {
	sum := ExpenseSummary{
		Count:      len(items),
		Total:      decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
		ByOrigin:   make(map[string]decimal.Decimal),
	}
	for _, rec := range items {
		amount := amountOf(rec, "amount")
		sum.Total = sum.Total.Add(amount)

		category, _ := rec["category"].(string)
		if category == "" {
			category = "uncategorized"
		}
		sum.ByCategory[category] = sum.ByCategory[category].Add(amount)

		origin, _ := rec["origin"].(string)
		if origin == "" {
			origin = types.OriginManual
		}
		sum.ByOrigin[origin] = sum.ByOrigin[origin].Add(amount)
	}
	return sum
}

// Categories returns the summary's category names sorted descending by
// total, ties broken alphabetically.
func (s ExpenseSummary) Categories() []string {
	names := make([]string, 0, len(s.ByCategory))
	for name := range s.ByCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.ByCategory[names[i]], s.ByCategory[names[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return names[i] < names[j]
	})
	return names
}

// SummarizeCashCounts totals expected versus counted cash over a
// collection of cash counts. Difference is counted minus expected, so a
// till shortfall reports negative.
func SummarizeCashCounts(items []types.Record) CashCountSummary {
	sum := CashCountSummary{
		Count:      len(items),
		Expected:   decimal.Zero,
		Counted:    decimal.Zero,
		Difference: decimal.Zero,
	}
	for _, rec := range items {
		expected := amountOf(rec, "expected")
		counted := amountOf(rec, "counted")
		sum.Expected = sum.Expected.Add(expected)
		sum.Counted = sum.Counted.Add(counted)
	}
	sum.Difference = sum.Counted.Sub(sum.Expected)
	return sum
}
