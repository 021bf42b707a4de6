package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is a single persisted entity. Every entity kind except Expense is
// opaque to this layer: a mapping of named fields that merely requires an
// identifier. Records decode from JSON objects, so numeric fields usually
// arrive as float64.
type Record map[string]any

// ID returns the record's identifier as a canonical string.
// Returns the empty string when no identifier is set.
func (r Record) ID() string {
	return IDString(r["id"])
}

// Ticket returns the sale ticket identifier as a canonical string.
// Sales are keyed by "ticket" rather than "id".
func (r Record) Ticket() string {
	return IDString(r["ticket"])
}

// Clone returns a shallow copy of the record. Nested values are shared.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IDString canonicalizes an identifier value to its string form.
// Numeric identifiers render without a decimal point so that a JSON-decoded
// float64 id compares equal to its string spelling. Nil yields "".
func IDString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case json.Number:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}
