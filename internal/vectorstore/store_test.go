package vectorstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	s := openTempStore(t)
	ctx := context.Background()

	run := Run{
		Name:     "seed42-next",
		Seed:     42,
		Strategy: "seeded",
		Op:       "next",
	}
	values := []string{"1434747710", "302596119", "269548474"}

	require.NoError(t, s.WriteRun(ctx, run, values))

	got, draws, err := s.ReadRun(ctx, "seed42-next")
	require.NoError(t, err)
	assert.Equal(t, run.Name, got.Name)
	assert.Equal(t, int32(42), got.Seed)
	assert.Equal(t, "seeded", got.Strategy)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, values, draws)
}

func TestStore_DuplicateRunRejected(t *testing.T) {
	s := openTempStore(t)
	ctx := context.Background()

	run := Run{Name: "dup", Seed: 1, Strategy: "seeded", Op: "next"}
	require.NoError(t, s.WriteRun(ctx, run, []string{"534011718"}))

	err := s.WriteRun(ctx, run, []string{"534011718"})
	require.ErrorIs(t, err, ErrDuplicateRun)

	// The failed write must not have touched the original draws.
	_, draws, err := s.ReadRun(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, []string{"534011718"}, draws)
}

func TestStore_ReadUnknownRun(t *testing.T) {
	s := openTempStore(t)
	_, _, err := s.ReadRun(context.Background(), "nope")
	require.ErrorIs(t, err, ErrRunNotFound)
}

func TestStore_ListRuns(t *testing.T) {
	s := openTempStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteRun(ctx, Run{Name: "b", Seed: 2, Strategy: "compat", Op: "next_double"}, []string{"1"}))
	require.NoError(t, s.WriteRun(ctx, Run{Name: "a", Seed: 1, Strategy: "seeded", Op: "next", Min: -5, Max: 5}, []string{"1", "2"}))

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "a", runs[0].Name, "ordered by name")
	assert.Equal(t, int64(-5), runs[0].Min)
	assert.Equal(t, 2, runs[0].Count)
	assert.Equal(t, "b", runs[1].Name)
}

func TestStore_ListRuns_EmptyArchive(t *testing.T) {
	s := openTempStore(t)
	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestStore_NameNormalization(t *testing.T) {
	s := openTempStore(t)
	ctx := context.Background()

	// Written decomposed, read composed: same archive key.
	require.NoError(t, s.WriteRun(ctx, Run{Name: "cafe\u0301", Seed: 9, Strategy: "seeded", Op: "next"}, []string{"x"}))

	_, draws, err := s.ReadRun(ctx, "caf\u00e9")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, draws)
}

func TestStore_OpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.WriteRun(context.Background(), Run{Name: "r", Seed: 3, Strategy: "seeded", Op: "next"}, []string{"v"}))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	_, draws, err := s2.ReadRun(context.Background(), "r")
	require.NoError(t, err)
	assert.Equal(t, []string{"v"}, draws)
}
