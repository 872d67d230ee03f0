package recordquery

import (
	"cmp"
	"sort"
	"strings"
)

// SortKey orders records by one field.
type SortKey struct {
	Field      string
	Descending bool
}

// ParseSortKeys reads "field,-other" style lists; a leading '-' means descending.
func ParseSortKeys(s string) []SortKey {
	var keys []SortKey
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			keys = append(keys, SortKey{Field: part[1:], Descending: true})
			continue
		}
		keys = append(keys, SortKey{Field: strings.TrimPrefix(part, "+")})
	}
	return keys
}

// Sort returns a stably sorted copy of records. Numbers compare numerically,
// dates chronologically and everything else case-insensitively. Missing
// values sort last in either direction.
func Sort(records []Record, keys ...SortKey) []Record {
	out := make([]Record, 0, len(records))
	out = append(out, records...)
	if len(keys) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range keys {
			a, b := out[i][key.Field], out[j][key.Field]
			ca, cb := sortClass(a), sortClass(b)
			if ca != cb {
				return ca < cb
			}
			if ca == classMissing {
				continue
			}

			c := compareValues(ca, a, b)
			if c == 0 {
				continue
			}
			if key.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}

const (
	classNumber = iota
	classDate
	classText
	classMissing
)

// sortClass keeps mixed columns ordered the same way in both directions:
// numbers, then dates, then other text, then missing values.
func sortClass(v any) int {
	if isMissing(v) {
		return classMissing
	}
	if _, ok := ToNumber(v); ok {
		return classNumber
	}
	if _, ok := ToDate(v); ok {
		return classDate
	}
	return classText
}

func compareValues(class int, a, b any) int {
	switch class {
	case classNumber:
		an, _ := ToNumber(a)
		bn, _ := ToNumber(b)
		return cmp.Compare(an, bn)
	case classDate:
		at, _ := ToDate(a)
		bt, _ := ToDate(b)
		return at.Compare(bt)
	}
	as, _ := ToText(a)
	bs, _ := ToText(b)
	return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
}

// Page describes one slice of a paginated result.
type Page struct {
	Page       int
	Limit      int
	TotalItems int
	TotalPages int
}

// Paginate returns the requested page (1-based). A limit of zero or less
// returns every record on a single page.
func Paginate(records []Record, page, limit int) ([]Record, Page) {
	total := len(records)
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		meta := Page{Page: 1, Limit: total, TotalItems: total}
		if total > 0 {
			meta.TotalPages = 1
		}
		return append(make([]Record, 0, total), records...), meta
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	meta := Page{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}

	// Checked before multiplying so a huge page cannot overflow start.
	if page-1 >= totalPages {
		return []Record{}, meta
	}
	start := (page - 1) * limit
	end := start + min(limit, total-start)
	return append(make([]Record, 0, end-start), records[start:end]...), meta
}
