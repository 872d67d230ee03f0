package recordquery

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var envelopeKeys = []string{"results", "data"}

// UnwrapEnvelope decodes a bare JSON array, a {"results": [...]} page or a
// {"data": [...]} envelope into records. Numbers are kept as json.Number so
// ToNumber and ToText see the original digits.
func UnwrapEnvelope(payload []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, ErrUnsupportedEnvelope
	}

	switch trimmed[0] {
	case '[':
		return decodeRecords(trimmed)
	case '{':
		var env map[string]json.RawMessage
		if err := decode(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode envelope: %w", err)
		}
		for _, key := range envelopeKeys {
			raw, ok := env[key]
			if !ok {
				continue
			}
			return UnwrapEnvelope(raw)
		}
	}
	return nil, ErrUnsupportedEnvelope
}

func decodeRecords(raw []byte) ([]Record, error) {
	var items []Record
	if err := decode(raw, &items); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		records = append(records, item)
	}
	return records, nil
}

func decode(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}
