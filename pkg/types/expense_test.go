package types

import (
	"reflect"
	"testing"
)

func TestNormalizeExpenseOrigin(t *testing.T) {
	t.Run("missing origin coerces to manual", func(t *testing.T) {
		got := NormalizeExpense(Record{"amount": 10.0})
		if got["origin"] != OriginManual {
			t.Fatalf("expected origin %q, got %v", OriginManual, got["origin"])
		}
	})

	t.Run("unrecognized origin coerces to manual", func(t *testing.T) {
		got := NormalizeExpense(Record{"origin": "whatever"})
		if got["origin"] != OriginManual {
			t.Fatalf("expected origin %q, got %v", OriginManual, got["origin"])
		}
	})

	t.Run("non-string origin coerces to manual", func(t *testing.T) {
		got := NormalizeExpense(Record{"origin": 7})
		if got["origin"] != OriginManual {
			t.Fatalf("expected origin %q, got %v", OriginManual, got["origin"])
		}
	})

	t.Run("inventory aliases coerce to inventory", func(t *testing.T) {
		aliases := []string{
			"inventory",
			"Inventario",
			"Desde Inventario",
			"desde_inventario",
			"FROM INVENTORY",
			"from-inventory",
			"  inv  ",
		}
		for _, alias := range aliases {
			got := NormalizeExpense(Record{"origin": alias})
			if got["origin"] != OriginInventory {
				t.Fatalf("alias %q: expected origin %q, got %v", alias, OriginInventory, got["origin"])
			}
		}
	})
}

func TestNormalizeExpenseOriginRef(t *testing.T) {
	t.Run("absent origin_ref defaults all keys to nil", func(t *testing.T) {
		got := NormalizeExpense(Record{"origin": "Desde Inventario"})
		ref, ok := got["origin_ref"].(Record)
		if !ok {
			t.Fatalf("expected origin_ref to be a Record, got %T", got["origin_ref"])
		}
		want := Record{RefProductID: nil, RefLotID: nil, RefMovementID: nil}
		if !reflect.DeepEqual(ref, want) {
			t.Fatalf("expected %v, got %v", want, ref)
		}
	})

	t.Run("non-record origin_ref is rebuilt", func(t *testing.T) {
		got := NormalizeExpense(Record{"origin_ref": "garbage"})
		ref := got["origin_ref"].(Record)
		if len(ref) != 3 {
			t.Fatalf("expected exactly 3 keys, got %d", len(ref))
		}
	})

	t.Run("known keys are preserved, extras dropped", func(t *testing.T) {
		got := NormalizeExpense(Record{"origin_ref": map[string]any{
			RefProductID: "p1",
			RefLotID:     "l1",
			"extra":      true,
		}})
		ref := got["origin_ref"].(Record)
		if ref[RefProductID] != "p1" || ref[RefLotID] != "l1" {
			t.Fatalf("expected preserved references, got %v", ref)
		}
		if _, ok := ref["extra"]; ok {
			t.Fatal("expected extra key to be dropped")
		}
		if v, ok := ref[RefMovementID]; !ok || v != nil {
			t.Fatalf("expected nil movement reference, got %v", v)
		}
	})
}

func TestNormalizeExpenseCreatedAt(t *testing.T) {
	restore := nowMillis
	defer func() { nowMillis = restore }()
	nowMillis = func() int64 { return 1700000000000 }

	t.Run("missing created_at is assigned", func(t *testing.T) {
		got := NormalizeExpense(Record{})
		if got["created_at"] != int64(1700000000000) {
			t.Fatalf("expected assigned timestamp, got %v", got["created_at"])
		}
	})

	t.Run("existing numeric created_at is kept", func(t *testing.T) {
		got := NormalizeExpense(Record{"created_at": 1600000000000.0})
		if got["created_at"] != 1600000000000.0 {
			t.Fatalf("expected original timestamp, got %v", got["created_at"])
		}
	})

	t.Run("non-numeric created_at is replaced", func(t *testing.T) {
		got := NormalizeExpense(Record{"created_at": "yesterday"})
		if got["created_at"] != int64(1700000000000) {
			t.Fatalf("expected assigned timestamp, got %v", got["created_at"])
		}
	})
}

func TestNormalizeExpenseIdempotent(t *testing.T) {
	inputs := []any{
		nil,
		"not a record",
		Record{},
		Record{"origin": "Desde Inventario", "amount": 25.5},
		Record{"origin": "manual", "created_at": 123.0, "note": "sample"},
		map[string]any{"origin_ref": map[string]any{RefLotID: "l9"}},
	}
	for _, in := range inputs {
		once := NormalizeExpense(in)
		twice := NormalizeExpense(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("normalization not idempotent for %v: %v != %v", in, once, twice)
		}
	}
}

func TestNormalizeExpensePreservesFields(t *testing.T) {
	in := Record{"amount": 10.0, "note": "ink", "category": "office"}
	got := NormalizeExpense(in)
	for _, key := range []string{"amount", "note", "category"} {
		if got[key] != in[key] {
			t.Fatalf("expected field %q preserved, got %v", key, got[key])
		}
	}
	// The input record itself is left untouched.
	if _, ok := in["origin"]; ok {
		t.Fatal("expected input record to be unmodified")
	}
}
