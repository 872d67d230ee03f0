// Package recordquery filters, searches, sorts, aggregates and exports
// in-memory record collections. Every function is pure: inputs are never
// mutated and malformed field values degrade per field instead of failing.
package recordquery

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is one domain entity keyed by field name.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether field is part of the record's schema.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Optional dereferences p, so missing optional fields are stored as nil.
func Optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// From converts typed entities into records.
func From[T interface{ ToRecord() Record }](items []T) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToRecord())
	}
	return out
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ToNumber is the single numeric conversion used by range filters, sorting
// and aggregates. Numeric strings are accepted; NaN and Inf are not.
func ToNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case *float64:
		if n == nil {
			return 0, false
		}
		f = *n
	case *int:
		if n == nil {
			return 0, false
		}
		f = float64(*n)
	case decimal.Decimal:
		f = n.InexactFloat64()
	case *decimal.Decimal:
		if n == nil {
			return 0, false
		}
		f = n.InexactFloat64()
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		return parseNumber(n)
	case *string:
		if n == nil {
			return 0, false
		}
		return parseNumber(*n)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToDate converts time values and date strings. Date-only strings are read
// as UTC midnight.
func ToDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case string:
		return parseDate(t)
	case *string:
		if t == nil {
			return time.Time{}, false
		}
		return parseDate(*t)
	default:
		return time.Time{}, false
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToText renders a field value for matching and export. The boolean is false
// for missing values: nil, nil pointers, zero times and blank strings.
func ToText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, strings.TrimSpace(t) != ""
	case *string:
		if t == nil {
			return "", false
		}
		return *t, strings.TrimSpace(*t) != ""
	case time.Time:
		if t.IsZero() {
			return "", false
		}
		return formatTime(t), true
	case *time.Time:
		if t == nil || t.IsZero() {
			return "", false
		}
		return formatTime(*t), true
	case decimal.Decimal:
		return t.String(), true
	case *decimal.Decimal:
		if t == nil {
			return "", false
		}
		return t.String(), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case *int:
		if t == nil {
			return "", false
		}
		return strconv.Itoa(*t), true
	case *float64:
		if t == nil {
			return "", false
		}
		return ToText(*t)
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	case fmt.Stringer:
		s := t.String()
		return s, strings.TrimSpace(s) != ""
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

func isMissing(v any) bool {
	_, ok := ToText(v)
	return !ok
}
