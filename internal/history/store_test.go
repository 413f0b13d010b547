package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetAbsent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "history.json"))

	_, ok, err := s.Get(context.Background(), storageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_SetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.json")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storageKey, `["Pune"]`))

	v, ok, err := s.Get(ctx, storageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["Pune"]`, v)
}

func TestFileStore_OverwriteKeepsOtherKeys(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "history.json"))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "other", "value"))
	require.NoError(t, s.Set(ctx, storageKey, `["A"]`))
	require.NoError(t, s.Set(ctx, storageKey, `["B","A"]`))

	v, ok, err := s.Get(ctx, storageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["B","A"]`, v)

	other, ok, err := s.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", other)
}

func TestFileStore_CorruptFileErrorsOnGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err := NewFileStore(path).Get(context.Background(), storageKey)
	require.Error(t, err)
}

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	s := NewRedisStore(mr.Addr())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisStore_GetAbsent(t *testing.T) {
	s := setupRedisStore(t)

	_, ok, err := s.Get(context.Background(), storageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_SetThenGet(t *testing.T) {
	s := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storageKey, `["Kochi","Pune"]`))

	v, ok, err := s.Get(ctx, storageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["Kochi","Pune"]`, v)
}

func TestRedisStore_ManagerRoundTrip(t *testing.T) {
	s := setupRedisStore(t)
	ctx := context.Background()

	first := newTestManager(t, s)
	require.NoError(t, first.Record(ctx, "Bangalore"))

	second := newTestManager(t, s)
	assert.Equal(t, []string{"Bangalore"}, second.Regions())
}
