package recordquery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapEnvelope_Shapes(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"bare array", `[{"name":"Sarah Johnson","salary":115000},{"name":"Lisa Wang","salary":75000}]`},
		{"results page", `{"count":2,"next":null,"results":[{"name":"Sarah Johnson","salary":115000},{"name":"Lisa Wang","salary":75000}]}`},
		{"data envelope", `{"success":true,"data":[{"name":"Sarah Johnson","salary":115000},{"name":"Lisa Wang","salary":75000}]}`},
		{"nested envelope", `{"data":{"results":[{"name":"Sarah Johnson","salary":115000},{"name":"Lisa Wang","salary":75000}]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := UnwrapEnvelope([]byte(tc.payload))
			require.NoError(t, err)
			require.Len(t, records, 2)

			assert.Equal(t, []string{"Sarah Johnson", "Lisa Wang"}, names(records))
			assert.Equal(t, json.Number("115000"), records[0]["salary"])
			assert.Equal(t, float64(95000), Aggregate(records, Spec{Average("salary")}).Float("average_salary"))
		})
	}
}

func TestUnwrapEnvelope_SkipsNullItems(t *testing.T) {
	records, err := UnwrapEnvelope([]byte(`[null, {"name":"Lisa Wang"}]`))

	require.NoError(t, err)
	assert.Equal(t, []string{"Lisa Wang"}, names(records))
}

func TestUnwrapEnvelope_Unsupported(t *testing.T) {
	for _, payload := range []string{``, `   `, `"text"`, `42`, `{"items":[]}`, `{"data":null}`} {
		_, err := UnwrapEnvelope([]byte(payload))
		assert.ErrorIs(t, err, ErrUnsupportedEnvelope, "payload %q", payload)
	}
}

func TestUnwrapEnvelope_MalformedJSON(t *testing.T) {
	_, err := UnwrapEnvelope([]byte(`[{"name":`))
	assert.Error(t, err)

	_, err = UnwrapEnvelope([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestUnwrapEnvelope_EmptyArray(t *testing.T) {
	records, err := UnwrapEnvelope([]byte(`{"results": []}`))

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
