package recordquery

import "errors"

var (
	ErrInvalidRange        = errors.New("range lower bound is greater than upper bound")
	ErrUnknownMetric       = errors.New("unknown aggregate metric")
	ErrMissingField        = errors.New("aggregate metric requires a field")
	ErrInvalidBuckets      = errors.New("bucket bounds must be ascending")
	ErrUnsupportedEnvelope = errors.New("payload is not an array, {results: [...]} or {data: [...]}")
)
