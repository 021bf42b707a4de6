package types

import (
	"encoding/json"
	"testing"
)

func TestIDString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"float without fraction", 1700000000000.0, "1700000000000"},
		{"float with fraction", 1.5, "1.5"},
		{"int", 42, "42"},
		{"int64", int64(99), "99"},
		{"json.Number", json.Number("123"), "123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IDString(tc.in); got != tc.want {
				t.Fatalf("IDString(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRecordIdentifiers(t *testing.T) {
	r := Record{"id": 7.0, "ticket": "T-0001"}
	if r.ID() != "7" {
		t.Fatalf("expected id 7, got %q", r.ID())
	}
	if r.Ticket() != "T-0001" {
		t.Fatalf("expected ticket T-0001, got %q", r.Ticket())
	}
	if (Record{}).ID() != "" {
		t.Fatal("expected empty id for empty record")
	}
}

func TestRecordClone(t *testing.T) {
	r := Record{"id": "a", "amount": 3.0}
	c := r.Clone()
	c["id"] = "b"
	if r["id"] != "a" {
		t.Fatal("clone mutated the original record")
	}
}
