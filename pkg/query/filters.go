package query

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Filters are caller-supplied key/value constraints forwarded verbatim to the fetch.
// Values are expected to be scalars (strings, numbers, booleans).
type Filters map[string]any

// Key returns the structural serialization of the filters. Two filter sets with
// the same keys and values produce the same key regardless of map identity.
func (f Filters) Key() string {
	if len(f) == 0 {
		return "{}"
	}
	// encoding/json writes map keys in sorted order
	b, err := json.Marshal(map[string]any(f))
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(f))
	}
	return string(b)
}

// Clone returns a shallow copy of the filters
func (f Filters) Clone() Filters {
	if f == nil {
		return Filters{}
	}
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Equal reports whether two filter sets are structurally equal
func (f Filters) Equal(other Filters) bool {
	return f.Key() == other.Key()
}

// isFalsy reports whether a filter value should be left out of a request.
// Empty strings, zero numbers, false and nil are all falsy.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	if x, ok := v.(float64); ok && math.IsNaN(x) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isFalsy(rv.Elem().Interface())
	}
	return rv.IsZero()
}

// formatValue renders a filter value as a query string value
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
