package recordquery

import (
	"fmt"
	"strings"
	"time"
)

// All is the single-select sentinel meaning "no constraint".
const All = "all"

// Constraint restricts the value of one record field.
type Constraint interface {
	// Active reports whether the constraint restricts anything at all.
	Active() bool
	matches(r Record, field string) bool
}

// Criteria maps a record field to the constraint applied to it. A record is
// kept when it satisfies every active constraint.
type Criteria map[string]Constraint

// AnyOf is a multi-select constraint. Values compare case-insensitively.
type AnyOf []string

func (a AnyOf) Active() bool {
	for _, v := range a {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func (a AnyOf) matches(r Record, field string) bool {
	raw, ok := r[field]
	if !ok {
		return true
	}
	value, ok := ToText(raw)
	if !ok {
		return false
	}
	for _, allowed := range a {
		if strings.EqualFold(strings.TrimSpace(allowed), value) {
			return true
		}
	}
	return false
}

// Equals is a single-select constraint; "" and All impose nothing.
type Equals string

func (e Equals) Active() bool {
	v := strings.TrimSpace(string(e))
	return v != "" && !strings.EqualFold(v, All)
}

func (e Equals) matches(r Record, field string) bool {
	return AnyOf{string(e)}.matches(r, field)
}

// Range bounds a numeric field inclusively. Values that do not parse as
// numbers never satisfy an active range.
type Range struct {
	Min *float64
	Max *float64
}

// Between builds a range with both bounds set.
func Between(lo, hi float64) Range {
	return Range{Min: &lo, Max: &hi}
}

// AtLeast builds a range with only a lower bound.
func AtLeast(lo float64) Range {
	return Range{Min: &lo}
}

// AtMost builds a range with only an upper bound.
func AtMost(hi float64) Range {
	return Range{Max: &hi}
}

func (rg Range) Active() bool {
	return rg.Min != nil || rg.Max != nil
}

func (rg Range) matches(r Record, field string) bool {
	raw, ok := r[field]
	if !ok {
		return true
	}
	n, ok := ToNumber(raw)
	if !ok {
		return false
	}
	if rg.Min != nil && n < *rg.Min {
		return false
	}
	if rg.Max != nil && n > *rg.Max {
		return false
	}
	return true
}

// DateRange bounds a date field inclusively, compared by calendar day.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (d DateRange) Active() bool {
	return d.From != nil || d.To != nil
}

func (d DateRange) matches(r Record, field string) bool {
	raw, ok := r[field]
	if !ok {
		return true
	}
	t, ok := ToDate(raw)
	if !ok {
		return false
	}
	day := calendarDay(t)
	if d.From != nil && day.Before(calendarDay(*d.From)) {
		return false
	}
	if d.To != nil && day.After(calendarDay(*d.To)) {
		return false
	}
	return true
}

func calendarDay(t time.Time) time.Time {
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// Contains is a free-text constraint over one or more fields. With no Fields
// it applies to the field it is keyed under.
type Contains struct {
	Term   string
	Fields []string
}

func (c Contains) Active() bool {
	return strings.TrimSpace(c.Term) != ""
}

func (c Contains) matches(r Record, field string) bool {
	fields := c.Fields
	if len(fields) == 0 {
		fields = []string{field}
	}

	known := false
	for _, f := range fields {
		if r.Has(f) {
			known = true
			break
		}
	}
	if !known {
		return true
	}
	return matchesTerm(r, strings.ToLower(c.Term), fields)
}

// allOf joins constraints that landed on the same field.
type allOf []Constraint

func (a allOf) Active() bool {
	for _, c := range a {
		if c.Active() {
			return true
		}
	}
	return false
}

func (a allOf) matches(r Record, field string) bool {
	for _, c := range a {
		if c.Active() && !c.matches(r, field) {
			return false
		}
	}
	return true
}

// And combines criteria. Constraints on the same field are all required.
func And(sets ...Criteria) Criteria {
	out := Criteria{}
	for _, set := range sets {
		for field, c := range set {
			if c == nil {
				continue
			}
			existing, ok := out[field]
			if !ok {
				out[field] = c
				continue
			}
			if joined, ok := existing.(allOf); ok {
				out[field] = append(append(allOf{}, joined...), c)
			} else {
				out[field] = allOf{existing, c}
			}
		}
	}
	return out
}

// ActiveCount is the number of fields carrying an active constraint.
func (c Criteria) ActiveCount() int {
	n := 0
	for _, con := range c {
		if con != nil && con.Active() {
			n++
		}
	}
	return n
}

// Validate rejects call shapes that can never match, such as inverted ranges.
func (c Criteria) Validate() error {
	for field, con := range c {
		if err := validateConstraint(field, con); err != nil {
			return err
		}
	}
	return nil
}

func validateConstraint(field string, con Constraint) error {
	switch v := con.(type) {
	case Range:
		if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
			return fmt.Errorf("%w: %s", ErrInvalidRange, field)
		}
	case DateRange:
		if v.From != nil && v.To != nil && v.From.After(*v.To) {
			return fmt.Errorf("%w: %s", ErrInvalidRange, field)
		}
	case allOf:
		for _, inner := range v {
			if err := validateConstraint(field, inner); err != nil {
				return err
			}
		}
	}
	return nil
}

// Match reports whether r satisfies every active constraint.
func (c Criteria) Match(r Record) bool {
	for field, con := range c {
		if con == nil || !con.Active() {
			continue
		}
		if !con.matches(r, field) {
			return false
		}
	}
	return true
}
