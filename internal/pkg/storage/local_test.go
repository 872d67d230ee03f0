package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "exports"))
	require.NoError(t, err)

	path, err := s.Save(ctx, "employees_export_2024-06-15.csv", strings.NewReader("\"Name\"\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exports", "employees_export_2024-06-15.csv"), path)

	ok, err := s.Exists(ctx, "employees_export_2024-06-15.csv")
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := s.Open(ctx, "employees_export_2024-06-15.csv")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "\"Name\"\n", string(body))

	require.NoError(t, s.Delete(ctx, "employees_export_2024-06-15.csv"))
	require.NoError(t, s.Delete(ctx, "employees_export_2024-06-15.csv"))
	ok, err = s.Exists(ctx, "employees_export_2024-06-15.csv")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_StaysInsideBase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "exports"))
	require.NoError(t, err)

	path, err := s.SaveBytes(ctx, "../../escape.csv", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exports", "escape.csv"), path)
	_, err = os.Stat(filepath.Join(dir, "escape.csv"))
	assert.True(t, os.IsNotExist(err))

	_, err = s.SaveBytes(ctx, "  ", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}
