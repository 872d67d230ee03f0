package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxFromContext_Empty(t *testing.T) {
	_, ok := TxFromContext(context.Background())

	assert.False(t, ok)
}

func TestNoTransaction(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	err := NoTransaction{}.WithinTransaction(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
