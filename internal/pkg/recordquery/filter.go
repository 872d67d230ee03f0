package recordquery

import "strings"

// Search keeps the records where any of fields contains term, ignoring case.
// A blank term keeps everything. Input order is preserved.
func Search(records []Record, term string, fields []string) []Record {
	out := make([]Record, 0, len(records))
	if strings.TrimSpace(term) == "" {
		return append(out, records...)
	}

	needle := strings.ToLower(term)
	for _, r := range records {
		if matchesTerm(r, needle, fields) {
			out = append(out, r)
		}
	}
	return out
}

func matchesTerm(r Record, needle string, fields []string) bool {
	for _, field := range fields {
		value, ok := ToText(r[field])
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

// ApplyFilters keeps the records that satisfy every active constraint in
// criteria. Constraints on fields a record does not carry are ignored.
func ApplyFilters(records []Record, criteria Criteria) []Record {
	out := make([]Record, 0, len(records))
	if criteria.ActiveCount() == 0 {
		return append(out, records...)
	}

	for _, r := range records {
		if criteria.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
