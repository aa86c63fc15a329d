package model

// unitKeys are the nested unit-system objects a PWS record may carry. The
// API returns at most one of them per record, selected by the `units`
// request parameter. Flatten checks them in this order and stops at the
// first match.
var unitKeys = []string{"imperial", "metric", "uk_hybrid"}

// Record is one observation or summary as decoded from the PWS API. The
// field set differs per endpoint, so records stay generic maps.
type Record map[string]any

// Flatten merges the record's nested unit-system object into the top level
// and removes the nested key, leaving all other fields untouched. Records
// without a unit-system object are returned unchanged, which also makes
// Flatten idempotent. The record is modified in place and returned for
// convenience.
func (r Record) Flatten() Record {
	for _, key := range unitKeys {
		nested, ok := r[key].(map[string]any)
		if !ok {
			continue
		}
		for k, v := range nested {
			r[k] = v
		}
		delete(r, key)
		break
	}
	return r
}

// FlattenAll flattens every record in a response list in place.
func FlattenAll(records []Record) []Record {
	for _, rec := range records {
		rec.Flatten()
	}
	return records
}
