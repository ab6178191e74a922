package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/josephgoksu/taskdeck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteStore(t *testing.T) *SQLiteTaskStore {
	t.Helper()

	s, err := NewSQLiteTaskStore(filepath.Join(t.TempDir(), "data", "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteTaskStore_BasicOperations(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	list, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	a := mustCreate(t, s, "A")
	b := mustCreate(t, s, "B")
	assert.Equal(t, models.Task{ID: 1, Content: "A"}, a)
	assert.Equal(t, models.Task{ID: 2, Content: "B"}, b)

	got, err := s.GetTask(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	updated, err := s.UpdateTask(ctx, 2, "B2")
	require.NoError(t, err)
	assert.Equal(t, models.Task{ID: 2, Content: "B2"}, updated)

	require.NoError(t, s.DeleteTask(ctx, 1))
	c := mustCreate(t, s, "C")
	assert.Equal(t, 3, c.ID, "AUTOINCREMENT must not reuse ids")

	list, err = s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Task{{ID: 2, Content: "B2"}, {ID: 3, Content: "C"}}, list)
}

func TestSQLiteTaskStore_Errors(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	_, err := s.CreateTask(ctx, "")
	assert.True(t, IsValidation(err))

	_, err = s.GetTask(ctx, 9)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateTask(ctx, 9, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateTask(ctx, 9, "")
	assert.True(t, IsValidation(err))

	assert.ErrorIs(t, s.DeleteTask(ctx, 9), ErrNotFound)
}

func TestSQLiteTaskStore_ReopenKeepsTasks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	ctx := context.Background()

	s, err := NewSQLiteTaskStore(path)
	require.NoError(t, err)
	mustCreate(t, s, "A")
	require.NoError(t, s.Close())

	s2, err := NewSQLiteTaskStore(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	got, err := s2.GetTask(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Content)
}

func TestOpen(t *testing.T) {
	mem, err := Open(BackendMemory, "", IDPolicyMonotonic)
	require.NoError(t, err)
	assert.IsType(t, &IndexedTaskStore{}, mem)

	sq, err := Open(BackendSQLite, ":memory:", IDPolicyMonotonic)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteTaskStore{}, sq)
	require.NoError(t, sq.Close())

	_, err = Open(BackendSQLite, ":memory:", IDPolicyLength)
	assert.Error(t, err)

	_, err = Open("mongo", "", IDPolicyMonotonic)
	assert.Error(t, err)
}
