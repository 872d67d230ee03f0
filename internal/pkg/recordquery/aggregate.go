package recordquery

import (
	"fmt"
	"strconv"
	"strings"
)

type MetricKind string

const (
	MetricCount          MetricKind = "count"
	MetricCountByField   MetricKind = "count_by_field"
	MetricCountWhere     MetricKind = "count_where"
	MetricSum            MetricKind = "sum"
	MetricAverage        MetricKind = "average"
	MetricMin            MetricKind = "min"
	MetricMax            MetricKind = "max"
	MetricAverageByField MetricKind = "average_by_field"
	MetricBucketCount    MetricKind = "bucket_count"
)

// Metric is one aggregate to compute. GroupBy is only read by
// average_by_field, Value by count_where and Bounds by bucket_count.
type Metric struct {
	Kind    MetricKind `json:"metric" yaml:"metric"`
	Field   string     `json:"field,omitempty" yaml:"field,omitempty"`
	GroupBy string     `json:"group_by,omitempty" yaml:"group_by,omitempty"`
	Value   string     `json:"value,omitempty" yaml:"value,omitempty"`
	Bounds  []float64  `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Alias   string     `json:"alias,omitempty" yaml:"alias,omitempty"`
}

func Count() Metric                 { return Metric{Kind: MetricCount} }
func CountByField(f string) Metric  { return Metric{Kind: MetricCountByField, Field: f} }
func Sum(f string) Metric           { return Metric{Kind: MetricSum, Field: f} }
func Average(f string) Metric       { return Metric{Kind: MetricAverage, Field: f} }
func MinOf(f string) Metric         { return Metric{Kind: MetricMin, Field: f} }
func MaxOf(f string) Metric         { return Metric{Kind: MetricMax, Field: f} }
func CountWhere(f, v string) Metric { return Metric{Kind: MetricCountWhere, Field: f, Value: v} }

// AverageByField averages field per distinct value of group.
func AverageByField(group, field string) Metric {
	return Metric{Kind: MetricAverageByField, GroupBy: group, Field: field}
}

// BucketCount counts numeric values into ranges split at bounds, e.g. bounds
// 60000, 80000 give "<60000", "60000-80000" and ">=80000".
func BucketCount(field string, bounds ...float64) Metric {
	return Metric{Kind: MetricBucketCount, Field: field, Bounds: bounds}
}

// As renames the metric in the result.
func (m Metric) As(alias string) Metric {
	m.Alias = alias
	return m
}

// Name is the key the metric is stored under in a Result.
func (m Metric) Name() string {
	if m.Alias != "" {
		return m.Alias
	}
	switch m.Kind {
	case MetricCount:
		return "count"
	case MetricCountByField:
		return "count_by_" + m.Field
	case MetricCountWhere:
		return "count_" + m.Field + "_" + strings.ToLower(m.Value)
	case MetricAverageByField:
		return "average_" + m.Field + "_by_" + m.GroupBy
	case MetricBucketCount:
		return m.Field + "_buckets"
	default:
		return string(m.Kind) + "_" + m.Field
	}
}

// Validate reports metrics that cannot be computed at all.
func (m Metric) Validate() error {
	switch m.Kind {
	case MetricCount:
		return nil
	case MetricCountByField, MetricSum, MetricAverage, MetricMin, MetricMax, MetricCountWhere:
		if m.Field == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, m.Kind)
		}
	case MetricAverageByField:
		if m.Field == "" || m.GroupBy == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, m.Kind)
		}
	case MetricBucketCount:
		if m.Field == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, m.Kind)
		}
		for i := 1; i < len(m.Bounds); i++ {
			if m.Bounds[i] <= m.Bounds[i-1] {
				return fmt.Errorf("%w: %s", ErrInvalidBuckets, m.Name())
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMetric, m.Kind)
	}
	return nil
}

// Spec lists the metrics to compute in one pass.
type Spec []Metric

func (s Spec) Validate() error {
	for _, m := range s {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Bucket is one range of a bucket_count metric. Min is inclusive, Max exclusive.
type Bucket struct {
	Label string   `json:"label" yaml:"label"`
	Min   *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max   *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Count int      `json:"count" yaml:"count"`
}

// Result maps metric names to computed values: int for counts, float64 for
// sum/average/min/max, map[string]int for count_by_field,
// map[string]float64 for average_by_field and []Bucket for bucket_count.
type Result map[string]any

// Int returns a count metric, or 0.
func (r Result) Int(name string) int {
	v, _ := r[name].(int)
	return v
}

// Float returns a numeric metric, or 0.
func (r Result) Float(name string) float64 {
	switch v := r[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Groups returns a count_by_field metric, or nil.
func (r Result) Groups(name string) map[string]int {
	v, _ := r[name].(map[string]int)
	return v
}

// Aggregate computes every metric in spec in a single pass over records.
// Values that are missing or not numeric are skipped by numeric metrics, and
// numeric metrics over no eligible values are 0. Invalid metrics are left
// out of the result; call Spec.Validate to surface them.
func Aggregate(records []Record, spec Spec) Result {
	accs := make([]accumulator, 0, len(spec))
	names := make([]string, 0, len(spec))
	for _, m := range spec {
		if m.Validate() != nil {
			continue
		}
		accs = append(accs, newAccumulator(m))
		names = append(names, m.Name())
	}

	for _, r := range records {
		for _, acc := range accs {
			acc.add(r)
		}
	}

	result := make(Result, len(accs))
	for i, acc := range accs {
		result[names[i]] = acc.result()
	}
	return result
}

type accumulator interface {
	add(r Record)
	result() any
}

func newAccumulator(m Metric) accumulator {
	switch m.Kind {
	case MetricCount:
		return &countAcc{}
	case MetricCountByField:
		return &groupCountAcc{field: m.Field, counts: map[string]int{}}
	case MetricCountWhere:
		return &countWhereAcc{field: m.Field, value: m.Value}
	case MetricSum, MetricAverage, MetricMin, MetricMax:
		return &numericAcc{kind: m.Kind, field: m.Field}
	case MetricAverageByField:
		return &groupAverageAcc{group: m.GroupBy, field: m.Field, sums: map[string]float64{}, counts: map[string]int{}}
	default:
		return newBucketAcc(m.Field, m.Bounds)
	}
}

type countAcc struct{ n int }

func (a *countAcc) add(Record)  { a.n++ }
func (a *countAcc) result() any { return a.n }

type groupCountAcc struct {
	field  string
	counts map[string]int
}

func (a *groupCountAcc) add(r Record) {
	if v, ok := ToText(r[a.field]); ok {
		a.counts[v]++
	}
}

func (a *groupCountAcc) result() any { return a.counts }

type countWhereAcc struct {
	field string
	value string
	n     int
}

func (a *countWhereAcc) add(r Record) {
	if v, ok := ToText(r[a.field]); ok && strings.EqualFold(v, a.value) {
		a.n++
	}
}

func (a *countWhereAcc) result() any { return a.n }

type numericAcc struct {
	kind  MetricKind
	field string
	sum   float64
	min   float64
	max   float64
	n     int
}

func (a *numericAcc) add(r Record) {
	v, ok := ToNumber(r[a.field])
	if !ok {
		return
	}
	if a.n == 0 || v < a.min {
		a.min = v
	}
	if a.n == 0 || v > a.max {
		a.max = v
	}
	a.sum += v
	a.n++
}

func (a *numericAcc) result() any {
	if a.n == 0 {
		return float64(0)
	}
	switch a.kind {
	case MetricAverage:
		return a.sum / float64(a.n)
	case MetricMin:
		return a.min
	case MetricMax:
		return a.max
	default:
		return a.sum
	}
}

type groupAverageAcc struct {
	group  string
	field  string
	sums   map[string]float64
	counts map[string]int
}

func (a *groupAverageAcc) add(r Record) {
	key, ok := ToText(r[a.group])
	if !ok {
		return
	}
	if _, seen := a.counts[key]; !seen {
		a.counts[key] = 0
	}
	if v, ok := ToNumber(r[a.field]); ok {
		a.sums[key] += v
		a.counts[key]++
	}
}

func (a *groupAverageAcc) result() any {
	out := make(map[string]float64, len(a.counts))
	for key, n := range a.counts {
		if n == 0 {
			out[key] = 0
			continue
		}
		out[key] = a.sums[key] / float64(n)
	}
	return out
}

type bucketAcc struct {
	field   string
	bounds  []float64
	buckets []Bucket
}

func newBucketAcc(field string, bounds []float64) *bucketAcc {
	buckets := make([]Bucket, 0, len(bounds)+1)
	for i := 0; i <= len(bounds); i++ {
		var b Bucket
		if i > 0 {
			lo := bounds[i-1]
			b.Min = &lo
		}
		if i < len(bounds) {
			hi := bounds[i]
			b.Max = &hi
		}
		b.Label = bucketLabel(b.Min, b.Max)
		buckets = append(buckets, b)
	}
	return &bucketAcc{field: field, bounds: bounds, buckets: buckets}
}

func bucketLabel(lo, hi *float64) string {
	format := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	switch {
	case lo == nil && hi == nil:
		return "all"
	case lo == nil:
		return "<" + format(*hi)
	case hi == nil:
		return ">=" + format(*lo)
	default:
		return format(*lo) + "-" + format(*hi)
	}
}

func (a *bucketAcc) add(r Record) {
	v, ok := ToNumber(r[a.field])
	if !ok {
		return
	}
	i := 0
	for i < len(a.bounds) && v >= a.bounds[i] {
		i++
	}
	a.buckets[i].Count++
}

func (a *bucketAcc) result() any { return a.buckets }
