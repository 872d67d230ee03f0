package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_AllViewsLoad(t *testing.T) {
	r, err := Builtin()
	require.NoError(t, err)

	var got []string
	for _, s := range r.Schemas() {
		got = append(got, s.Name)
		assert.NotEmpty(t, s.Columns, s.Name)
		assert.NotEmpty(t, s.SearchFields, s.Name)
		assert.Equal(t, DefaultPageSize, s.PageSize, s.Name)
	}
	assert.Equal(t, []string{Employees, Leave, Jobs, Candidates, Attendance, Projects, Tasks, Milestones, Remuneration}, got)
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := MustBuiltin().Get("payroll")

	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestLoad_RejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "views:\n  - name: a\n    colour: blue\n",
		"unnamed view":     "views:\n  - entity: a\n",
		"unknown filter":   "views:\n  - name: a\n    filters:\n      - {key: x, type: fuzzy}\n",
		"duplicate filter": "views:\n  - name: a\n    filters:\n      - {key: x, type: select}\n      - {key: x, type: text}\n",
		"duplicate view":   "views:\n  - name: a\n  - name: a\n",
		"bad metric":       "views:\n  - name: a\n    aggregates:\n      - {metric: median, field: salary}\n",
		"metric no field":  "views:\n  - name: a\n    totals:\n      - {metric: sum}\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	r, err := Load([]byte("views:\n  - name: people\n    filters:\n      - {key: team, type: multiselect}\n"))
	require.NoError(t, err)

	s, err := r.Get("people")
	require.NoError(t, err)
	assert.Equal(t, "people", s.Entity)
	assert.Equal(t, "team", s.Filters[0].Field)
	assert.Equal(t, DefaultPageSize, s.PageSize)
}

func TestRegistry_MustGet(t *testing.T) {
	r := MustBuiltin()

	assert.Equal(t, Jobs, r.MustGet(Jobs).Name)
	assert.Panics(t, func() { r.MustGet("payroll") })
}
