package reports

import (
	"testing"

	"github.com/despensa-labs/almacen/pkg/types"
)

func TestSummarizeExpenses(t *testing.T) {
	items := []types.Record{
		{"amount": 10.10, "category": "rent", "origin": "manual"},
		{"amount": 0.20, "category": "rent", "origin": "manual"},
		{"amount": "5.70", "category": "mercaderia", "origin": "inventory"},
		{"amount": 3, "origin": "manual"},
	}

	sum := SummarizeExpenses(items)
	if sum.Count != 4 {
		t.Fatalf("count = %d", sum.Count)
	}
	if got := sum.Total.String(); got != "19" {
		t.Fatalf("total = %s, want 19", got)
	}
	if got := sum.ByCategory["rent"].String(); got != "10.3" {
		t.Fatalf("rent = %s, want 10.3", got)
	}
	if got := sum.ByCategory["uncategorized"].String(); got != "3" {
		t.Fatalf("uncategorized = %s, want 3", got)
	}
	if got := sum.ByOrigin["inventory"].String(); got != "5.7" {
		t.Fatalf("inventory origin = %s, want 5.7", got)
	}
	if got := sum.ByOrigin["manual"].String(); got != "13.3" {
		t.Fatalf("manual origin = %s, want 13.3", got)
	}
}

func TestSummarizeExpensesEmpty(t *testing.T) {
	sum := SummarizeExpenses(nil)
	if sum.Count != 0 || !sum.Total.IsZero() {
		t.Fatalf("empty summary = %+v", sum)
	}
	if len(sum.ByCategory) != 0 || len(sum.ByOrigin) != 0 {
		t.Fatalf("empty summary has buckets: %+v", sum)
	}
}

func TestSummarizeExpensesBadAmounts(t *testing.T) {
	items := []types.Record{
		{"amount": "not-a-number", "category": "misc"},
		{"category": "misc"},
		{"amount": nil, "category": "misc"},
	}
	sum := SummarizeExpenses(items)
	if !sum.Total.IsZero() {
		t.Fatalf("total = %s, want 0", sum.Total)
	}
	if sum.Count != 3 {
		t.Fatalf("count = %d, want 3", sum.Count)
	}
}

func TestCategoriesOrdering(t *testing.T) {
	sum := SummarizeExpenses([]types.Record{
		{"amount": 1.0, "category": "b"},
		{"amount": 5.0, "category": "c"},
		{"amount": 1.0, "category": "a"},
	})
	got := sum.Categories()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestSummarizeCashCounts(t *testing.T) {
	items := []types.Record{
		{"expected": 100.50, "counted": 100.50},
		{"expected": 80.0, "counted": 78.25},
	}
	sum := SummarizeCashCounts(items)
	if sum.Count != 2 {
		t.Fatalf("count = %d", sum.Count)
	}
	if got := sum.Expected.String(); got != "180.5" {
		t.Fatalf("expected = %s", got)
	}
	if got := sum.Counted.String(); got != "178.75" {
		t.Fatalf("counted = %s", got)
	}
	if got := sum.Difference.String(); got != "-1.75" {
		t.Fatalf("difference = %s, want -1.75 (shortfall)", got)
	}
}
