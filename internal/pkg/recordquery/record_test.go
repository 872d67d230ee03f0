package recordquery

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	salary := decimal.RequireFromString("87500.25")
	days := 3
	valid := []struct {
		in   any
		want float64
	}{
		{42, 42},
		{int64(7), 7},
		{uint8(5), 5},
		{float32(1.5), 1.5},
		{2.25, 2.25},
		{" 75000 ", 75000},
		{"-3.5", -3.5},
		{json.Number("115000"), 115000},
		{salary, 87500.25},
		{&salary, 87500.25},
		{&days, 3},
	}
	for _, c := range valid {
		got, ok := ToNumber(c.in)
		assert.True(t, ok, "ToNumber(%v)", c.in)
		assert.Equal(t, c.want, got, "ToNumber(%v)", c.in)
	}

	var nilDecimal *decimal.Decimal
	invalid := []any{nil, "", "  ", "n/a", "12abc", true, math.NaN(), math.Inf(1), "NaN", nilDecimal, []int{1}}
	for _, in := range invalid {
		_, ok := ToNumber(in)
		assert.False(t, ok, "ToNumber(%v)", in)
	}
}

func TestToDate(t *testing.T) {
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	got, ok := ToDate("2024-06-15")
	assert.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = ToDate("2024-06-15T09:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, 9, got.Hour())

	_, ok = ToDate("15/06/2024")
	assert.False(t, ok)
	_, ok = ToDate(time.Time{})
	assert.False(t, ok)
	_, ok = ToDate(12)
	assert.False(t, ok)
}

func TestToText(t *testing.T) {
	name := "Lisa"
	var nilName *string

	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{"Sales", "Sales", true},
		{"   ", "   ", false},
		{&name, "Lisa", true},
		{nilName, "", false},
		{nil, "", false},
		{75000, "75000", true},
		{75000.0, "75000", true},
		{4.5, "4.5", true},
		{true, "true", true},
		{decimal.RequireFromString("1000.50"), "1000.5", true},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "2024-01-02", true},
		{time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC), "2024-01-02T08:30:00Z", true},
		{time.Time{}, "", false},
	}
	for _, c := range cases {
		got, ok := ToText(c.in)
		assert.Equal(t, c.ok, ok, "ToText(%v)", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "ToText(%v)", c.in)
		}
	}
}

func TestRecord_CloneAndHas(t *testing.T) {
	r := Record{"name": "Sarah", "phone": nil}

	clone := r.Clone()
	clone["name"] = "Changed"

	assert.Equal(t, "Sarah", r["name"])
	assert.True(t, r.Has("phone"))
	assert.False(t, r.Has("email"))
}

type badge struct{ holder string }

func (b badge) ToRecord() Record { return Record{"holder": b.holder} }

func TestOptionalAndFrom(t *testing.T) {
	phone := "555-0101"
	var none *string

	assert.Equal(t, "555-0101", Optional(&phone))
	assert.Nil(t, Optional(none))

	records := From([]badge{{"Sarah"}, {"Lisa"}})
	assert.Equal(t, []Record{{"holder": "Sarah"}, {"holder": "Lisa"}}, records)
	assert.NotNil(t, From([]badge(nil)))
}
