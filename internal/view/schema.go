package view

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

type FilterType string

const (
	FilterMultiselect FilterType = "multiselect"
	FilterSelect      FilterType = "select"
	FilterRangeMin    FilterType = "range_min"
	FilterRangeMax    FilterType = "range_max"
	FilterDateFrom    FilterType = "date_from"
	FilterDateTo      FilterType = "date_to"
	FilterText        FilterType = "text"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// Filter binds one query parameter to a record field.
type Filter struct {
	Key    string     `yaml:"key" json:"key"`
	Field  string     `yaml:"field" json:"field"`
	Type   FilterType `yaml:"type" json:"type"`
	Fields []string   `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Schema is everything a view contributes on top of the shared engine.
type Schema struct {
	Name         string               `yaml:"name" json:"name"`
	Entity       string               `yaml:"entity" json:"entity"`
	Description  string               `yaml:"description" json:"description"`
	SearchFields []string             `yaml:"search_fields" json:"search_fields"`
	DefaultSort  string               `yaml:"default_sort" json:"default_sort"`
	PageSize     int                  `yaml:"page_size" json:"page_size"`
	Filters      []Filter             `yaml:"filters" json:"filters"`
	Columns      []recordquery.Column `yaml:"columns" json:"columns"`
	Aggregates   recordquery.Spec     `yaml:"aggregates" json:"aggregates"`
	Totals       recordquery.Spec     `yaml:"totals" json:"totals"`
}

// Query is a request against one view, already converted from strings.
type Query struct {
	Criteria recordquery.Criteria
	Search   string
	Sort     []recordquery.SortKey
	Page     int
	Limit    int
}

// Outcome is the result of running a Query.
type Outcome struct {
	Items      []recordquery.Record `json:"items"`
	Aggregates recordquery.Result   `json:"aggregates"`
	Totals     recordquery.Result   `json:"totals"`
	Page       recordquery.Page     `json:"-"`
}

func (s *Schema) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: view without name", ErrInvalidSchema)
	}
	if s.Entity == "" {
		s.Entity = s.Name
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}

	seen := make(map[string]bool, len(s.Filters))
	for i := range s.Filters {
		f := &s.Filters[i]
		if f.Key == "" {
			return fmt.Errorf("%w: %s: filter without key", ErrInvalidSchema, s.Name)
		}
		if seen[f.Key] {
			return fmt.Errorf("%w: %s: duplicate filter %q", ErrInvalidSchema, s.Name, f.Key)
		}
		seen[f.Key] = true
		if f.Field == "" {
			f.Field = f.Key
		}

		switch f.Type {
		case FilterMultiselect, FilterSelect, FilterRangeMin, FilterRangeMax, FilterDateFrom, FilterDateTo, FilterText:
		default:
			return fmt.Errorf("%w: %s: filter %q has unknown type %q", ErrInvalidSchema, s.Name, f.Key, f.Type)
		}
	}

	if err := s.Aggregates.Validate(); err != nil {
		return fmt.Errorf("%w: %s aggregates: %v", ErrInvalidSchema, s.Name, err)
	}
	if err := s.Totals.Validate(); err != nil {
		return fmt.Errorf("%w: %s totals: %v", ErrInvalidSchema, s.Name, err)
	}
	return nil
}

// Bind converts query parameters into a Query. Numeric and date parameters
// are parsed here, once; anything unparseable is a validation error.
// Parameters the view does not declare are ignored.
func (s *Schema) Bind(params url.Values) (Query, error) {
	q := Query{
		Search: strings.TrimSpace(params.Get("search")),
		Page:   1,
		Limit:  s.PageSize,
	}
	if q.Search == "" {
		q.Search = strings.TrimSpace(params.Get("q"))
	}
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}

	var (
		errs       validator.ValidationErrors
		sets       []recordquery.Criteria
		ranges     = map[string]*recordquery.Range{}
		dates      = map[string]*recordquery.DateRange{}
		rangeOrder []string
		dateOrder  []string
	)

	for _, f := range s.Filters {
		raw, ok := params[f.Key]
		if !ok || len(raw) == 0 {
			continue
		}
		first := strings.TrimSpace(raw[0])

		switch f.Type {
		case FilterMultiselect:
			if values := splitValues(raw); len(values) > 0 {
				sets = append(sets, recordquery.Criteria{f.Field: recordquery.AnyOf(values)})
			}

		case FilterSelect:
			sets = append(sets, recordquery.Criteria{f.Field: recordquery.Equals(first)})

		case FilterText:
			sets = append(sets, recordquery.Criteria{f.Field: recordquery.Contains{Term: first, Fields: f.Fields}})

		case FilterRangeMin, FilterRangeMax:
			if first == "" {
				continue
			}
			n, ok := recordquery.ToNumber(first)
			if !ok {
				errs = append(errs, validator.ValidationError{Field: f.Key, Message: "must be a number"})
				continue
			}
			rg, ok := ranges[f.Field]
			if !ok {
				rg = &recordquery.Range{}
				ranges[f.Field] = rg
				rangeOrder = append(rangeOrder, f.Field)
			}
			if f.Type == FilterRangeMin {
				rg.Min = &n
			} else {
				rg.Max = &n
			}

		case FilterDateFrom, FilterDateTo:
			if first == "" {
				continue
			}
			d, ok := validator.IsValidDate(first)
			if !ok {
				errs = append(errs, validator.ValidationError{Field: f.Key, Message: "must be a date in YYYY-MM-DD format"})
				continue
			}
			dr, ok := dates[f.Field]
			if !ok {
				dr = &recordquery.DateRange{}
				dates[f.Field] = dr
				dateOrder = append(dateOrder, f.Field)
			}
			if f.Type == FilterDateFrom {
				dr.From = &d
			} else {
				dr.To = &d
			}
		}
	}

	for _, field := range rangeOrder {
		sets = append(sets, recordquery.Criteria{field: *ranges[field]})
	}
	for _, field := range dateOrder {
		sets = append(sets, recordquery.Criteria{field: *dates[field]})
	}

	if p := params.Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil && page > 0 {
			q.Page = min(page, MaxPage)
		}
	}
	if l := params.Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil && limit > 0 {
			q.Limit = min(limit, MaxPageSize)
		}
	}

	q.Sort = sortKeys(params, s.DefaultSort)

	if len(errs) > 0 {
		return Query{}, errs
	}

	q.Criteria = recordquery.And(sets...)
	if err := q.Criteria.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}

func sortKeys(params url.Values, fallback string) []recordquery.SortKey {
	if s := params.Get("sort"); s != "" {
		return recordquery.ParseSortKeys(s)
	}
	if by := strings.TrimSpace(params.Get("sort_by")); by != "" {
		return []recordquery.SortKey{{
			Field:      by,
			Descending: strings.EqualFold(strings.TrimSpace(params.Get("sort_order")), "desc"),
		}}
	}
	return recordquery.ParseSortKeys(fallback)
}

// splitValues flattens repeated and comma separated parameter values. The
// "all" sentinel selects nothing in particular and is dropped.
func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			v = strings.TrimSpace(v)
			if v == "" || strings.EqualFold(v, recordquery.All) {
				continue
			}
			out = append(out, v)
		}
	}
	return out
}

// Select filters, searches and sorts records without paginating.
func (s *Schema) Select(records []recordquery.Record, q Query) []recordquery.Record {
	filtered := recordquery.ApplyFilters(records, q.Criteria)
	filtered = recordquery.Search(filtered, q.Search, s.SearchFields)
	return recordquery.Sort(filtered, q.Sort...)
}

// Run filters, searches and sorts records, computes aggregates over the
// filtered set and totals over all of records, then paginates.
func (s *Schema) Run(records []recordquery.Record, q Query) Outcome {
	filtered := s.Select(records, q)
	items, page := recordquery.Paginate(filtered, q.Page, q.Limit)

	return Outcome{
		Items:      items,
		Aggregates: recordquery.Aggregate(filtered, s.Aggregates),
		Totals:     recordquery.Aggregate(records, s.Totals),
		Page:       page,
	}
}

// Export renders every record matching q, ignoring pagination.
func (s *Schema) Export(records []recordquery.Record, q Query, at time.Time) (filename, body string) {
	filtered := s.Select(records, q)
	return recordquery.ExportFilename(s.Entity, at, "csv"), recordquery.ExportDelimited(filtered, s.Columns)
}

// File is a rendered export ready to be downloaded or written to disk.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// List binds params and runs them against records.
func (s *Schema) List(records []recordquery.Record, params url.Values) (Outcome, error) {
	q, err := s.Bind(params)
	if err != nil {
		return Outcome{}, err
	}
	return s.Run(records, q), nil
}

// ExportCSV binds params and renders the matching records as CSV.
func (s *Schema) ExportCSV(records []recordquery.Record, params url.Values, at time.Time) (File, error) {
	q, err := s.Bind(params)
	if err != nil {
		return File{}, err
	}
	name, body := s.Export(records, q, at)
	return File{Name: name, ContentType: recordquery.ContentTypeCSV, Body: []byte(body)}, nil
}
