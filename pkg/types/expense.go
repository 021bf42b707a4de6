package types

import (
	"encoding/json"
	"strings"
	"time"
)

// Expense origin values. An expense is either entered by hand or generated
// from an inventory lot intake.
const (
	OriginManual    = "manual"
	OriginInventory = "inventory"
)

// Origin reference field names. The origin_ref of a normalized expense
// always carries exactly these three keys, each defaulting to nil.
const (
	RefProductID  = "product_id"
	RefLotID      = "lot_id"
	RefMovementID = "inventory_movement_id"
)

// inventoryAliases lists the recognized spellings that coerce an origin to
// "inventory". Matching is case-insensitive after collapsing underscores
// and hyphens to spaces. Legacy records carry the Spanish UI labels.
var inventoryAliases = map[string]bool{
	"inventory":        true,
	"inventario":       true,
	"desde inventario": true,
	"from inventory":   true,
	"inv":              true,
}

// nowMillis returns the current time as Unix milliseconds. Overridable in
// tests so normalization is deterministic.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// NormalizeExpense canonicalizes a raw expense record. Any input value is
// accepted; non-record input is treated as an empty record. The result is a
// new record carrying all original fields with origin, origin_ref, and
// created_at overridden:
//
//   - origin becomes "inventory" when the input matches a recognized alias,
//     otherwise "manual";
//   - origin_ref always has exactly the product_id, lot_id, and
//     inventory_movement_id keys, defaulting each to nil;
//   - created_at keeps an existing numeric timestamp, otherwise the current
//     Unix-millisecond time is assigned.
//
// Normalization is idempotent: applying it to an already-normalized record
// yields an identical record.
func NormalizeExpense(raw any) Record {
	var src Record
	switch v := raw.(type) {
	case Record:
		src = v
	case map[string]any:
		src = Record(v)
	}

	out := make(Record, len(src)+3)
	for k, v := range src {
		out[k] = v
	}

	out["origin"] = normalizeOrigin(out["origin"])
	out["origin_ref"] = normalizeOriginRef(out["origin_ref"])
	if !isNumericTimestamp(out["created_at"]) {
		out["created_at"] = nowMillis()
	}
	return out
}

// normalizeOrigin coerces an arbitrary origin value to one of the two
// enumerated origins. Anything that is not a recognized inventory spelling
// becomes "manual".
func normalizeOrigin(v any) string {
	s, ok := v.(string)
	if !ok {
		return OriginManual
	}
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", " ")
	key = strings.ReplaceAll(key, "-", " ")
	key = strings.Join(strings.Fields(key), " ")
	if inventoryAliases[key] {
		return OriginInventory
	}
	return OriginManual
}

// normalizeOriginRef rebuilds the origin_ref with exactly the three known
// keys. Non-record-shaped input yields all-nil references.
func normalizeOriginRef(v any) Record {
	var src Record
	switch m := v.(type) {
	case Record:
		src = m
	case map[string]any:
		src = Record(m)
	}
	return Record{
		RefProductID:  src[RefProductID],
		RefLotID:      src[RefLotID],
		RefMovementID: src[RefMovementID],
	}
}

// isNumericTimestamp reports whether v already holds a numeric created_at.
func isNumericTimestamp(v any) bool {
	switch n := v.(type) {
	case float64, float32, int, int64, uint, uint64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	default:
		return false
	}
}
