package types

import "testing"

func TestKeyField(t *testing.T) {
	if KeyField(KindSales) != "ticket" {
		t.Fatal("sales must key by ticket")
	}
	if KeyField(KindExpenses) != "id" {
		t.Fatal("expenses must key by id")
	}
}

func TestIsKnownKind(t *testing.T) {
	for _, k := range KnownKinds {
		if !IsKnownKind(k) {
			t.Fatalf("expected %q to be a known kind", k)
		}
	}
	if IsKnownKind("invoices") {
		t.Fatal("unexpected kind accepted")
	}
}
