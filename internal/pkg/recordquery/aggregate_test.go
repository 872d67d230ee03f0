package recordquery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_AverageWithNoParseableValuesIsZero(t *testing.T) {
	records := []Record{
		{"salary": "n/a"},
		{"salary": nil},
		{"salary": ""},
		{"name": "no salary field"},
	}

	result := Aggregate(records, Spec{Average("salary"), Sum("salary"), MinOf("salary"), MaxOf("salary")})

	assert.Equal(t, float64(0), result["average_salary"])
	assert.Equal(t, float64(0), result["sum_salary"])
	assert.Equal(t, float64(0), result["min_salary"])
	assert.Equal(t, float64(0), result["max_salary"])
}

func TestAggregate_EmptyInput(t *testing.T) {
	result := Aggregate(nil, Spec{Count(), Average("salary"), CountByField("status"), CountWhere("status", "active")})

	assert.Equal(t, 0, result.Int("count"))
	assert.Equal(t, float64(0), result.Float("average_salary"))
	assert.Empty(t, result.Groups("count_by_status"))
	assert.Equal(t, 0, result.Int("count_status_active"))
}

func TestAggregate_SkipsMalformedValues(t *testing.T) {
	result := Aggregate(directory(), Spec{Sum("salary"), Average("salary"), MinOf("salary"), MaxOf("salary"), Count()})

	// Sarah "115000", Michael 85000.0, David 98000; Emily "n/a" and Lisa nil skipped
	assert.Equal(t, float64(298000), result.Float("sum_salary"))
	assert.InDelta(t, 99333.33, result.Float("average_salary"), 0.01)
	assert.Equal(t, float64(85000), result.Float("min_salary"))
	assert.Equal(t, float64(115000), result.Float("max_salary"))
	assert.Equal(t, 5, result.Int("count"))
}

func TestAggregate_CountByFieldOnlyObservedValues(t *testing.T) {
	result := Aggregate(directory(), Spec{CountByField("department"), CountByField("status")})

	assert.Equal(t, map[string]int{"Engineering": 3, "Marketing": 1, "Sales": 1}, result.Groups("count_by_department"))
	assert.Equal(t, map[string]int{"active": 3, "inactive": 1, "terminated": 1}, result.Groups("count_by_status"))
}

func TestAggregate_CountWhere(t *testing.T) {
	spec := Spec{
		CountWhere("status", "active"),
		CountWhere("status", "Terminated").As("terminated"),
		CountWhere("status", "on_leave"),
	}

	result := Aggregate(directory(), spec)

	assert.Equal(t, 3, result.Int("count_status_active"))
	assert.Equal(t, 1, result.Int("terminated"))
	assert.Equal(t, 0, result.Int("count_status_on_leave"))
}

func TestAggregate_AverageByField(t *testing.T) {
	result := Aggregate(directory(), Spec{AverageByField("department", "salary")})

	assert.Equal(t, map[string]float64{
		"Engineering": 106500,
		"Marketing":   85000,
		"Sales":       0,
	}, result["average_salary_by_department"])
}

func TestAggregate_BucketCount(t *testing.T) {
	result := Aggregate(directory(), Spec{BucketCount("salary", 60000, 90000, 110000)})

	buckets, ok := result["salary_buckets"].([]Bucket)
	require.True(t, ok)
	require.Len(t, buckets, 4)

	labels := []string{buckets[0].Label, buckets[1].Label, buckets[2].Label, buckets[3].Label}
	assert.Equal(t, []string{"<60000", "60000-90000", "90000-110000", ">=110000"}, labels)
	assert.Equal(t, []int{0, 1, 1, 1}, []int{buckets[0].Count, buckets[1].Count, buckets[2].Count, buckets[3].Count})
}

func TestAggregate_DecimalValues(t *testing.T) {
	records := []Record{
		{"salary": decimal.RequireFromString("1000.50")},
		{"salary": decimal.RequireFromString("999.50")},
	}

	result := Aggregate(records, Spec{Sum("salary"), Average("salary")})

	assert.Equal(t, float64(2000), result.Float("sum_salary"))
	assert.Equal(t, float64(1000), result.Float("average_salary"))
}

func TestAggregate_Idempotent(t *testing.T) {
	records := directory()
	spec := Spec{Count(), CountByField("department"), Average("salary"), BucketCount("salary", 90000)}

	assert.Equal(t, Aggregate(records, spec), Aggregate(records, spec))
}

func TestAggregate_InvalidMetricsAreLeftOut(t *testing.T) {
	spec := Spec{Count(), {Kind: "median", Field: "salary"}, Sum("")}

	result := Aggregate(directory(), spec)

	assert.Len(t, result, 1)
	assert.ErrorIs(t, spec.Validate(), ErrUnknownMetric)
	assert.ErrorIs(t, Spec{Sum("")}.Validate(), ErrMissingField)
	assert.ErrorIs(t, Spec{BucketCount("salary", 10, 5)}.Validate(), ErrInvalidBuckets)
}

func TestMetric_Name(t *testing.T) {
	assert.Equal(t, "count", Count().Name())
	assert.Equal(t, "count_by_status", CountByField("status").Name())
	assert.Equal(t, "sum_days", Sum("days").Name())
	assert.Equal(t, "average_rating", Average("rating").Name())
	assert.Equal(t, "count_status_pending", CountWhere("status", "Pending").Name())
	assert.Equal(t, "average_salary_by_department", AverageByField("department", "salary").Name())
	assert.Equal(t, "salary_buckets", BucketCount("salary", 1).Name())
	assert.Equal(t, "pending", CountWhere("status", "pending").As("pending").Name())
}
