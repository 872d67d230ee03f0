// Package view holds the per-view schemas (search fields, filter parameters,
// export columns and aggregates) that drive the record query engine.
package view

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownView   = errors.New("unknown view")
	ErrInvalidSchema = errors.New("invalid view schema")
)

// Names of the built-in views.
const (
	Employees    = "employees"
	Leave        = "leave"
	Jobs         = "jobs"
	Candidates   = "candidates"
	Attendance   = "attendance"
	Projects     = "projects"
	Tasks        = "tasks"
	Milestones   = "milestones"
	Remuneration = "remuneration"
)

//go:embed views.yaml
var builtinViews []byte

type document struct {
	Views []*Schema `yaml:"views"`
}

// Registry looks up view schemas by name.
type Registry struct {
	byName map[string]*Schema
	order  []*Schema
}

// Load parses a views document. Unknown keys are rejected so that a typo in
// a filter definition fails at startup instead of silently filtering nothing.
func Load(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	r := &Registry{byName: make(map[string]*Schema, len(doc.Views))}
	for _, s := range doc.Views {
		if s == nil {
			continue
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate view %q", ErrInvalidSchema, s.Name)
		}
		r.byName[s.Name] = s
		r.order = append(r.order, s)
	}
	return r, nil
}

// Builtin returns the registry compiled into the binary.
func Builtin() (*Registry, error) {
	return Load(builtinViews)
}

// MustBuiltin is Builtin for callers that cannot continue without views.
func MustBuiltin() *Registry {
	r, err := Builtin()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Get(name string) (*Schema, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	return s, nil
}

// Schemas lists every view in declaration order.
func (r *Registry) Schemas() []*Schema {
	out := make([]*Schema, len(r.order))
	copy(out, r.order)
	return out
}

// MustGet is Get for wiring code where a missing built-in view is a bug.
func (r *Registry) MustGet(name string) *Schema {
	s, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return s
}
