package queries

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/scoopdesk/scoopdesk/internal/database"
	"github.com/scoopdesk/scoopdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogQueries(t *testing.T) *LogQueries {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "logs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewLogQueries(db.DB)
}

func TestAppendAndRecentOrdering(t *testing.T) {
	logs := testLogQueries(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, logs.Append(&models.OperationLog{
			Time:      "2024-01-01T00:00:00Z", // identical timestamps on purpose
			Operation: fmt.Sprintf("op-%d", i),
			Command:   fmt.Sprintf("scoop cmd-%d", i),
			Success:   i%2 == 0,
		}))
	}

	entries, err := logs.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// strictly reverse insertion order even with equal timestamps
	assert.Equal(t, "op-4", entries[0].Operation)
	assert.Equal(t, "op-3", entries[1].Operation)
	assert.Equal(t, "op-2", entries[2].Operation)

	entries, err = logs.Recent(100)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestAppendFillsTimestamp(t *testing.T) {
	logs := testLogQueries(t)

	entry := &models.OperationLog{Operation: "op", Command: "scoop list", Success: true}
	require.NoError(t, logs.Append(entry))
	assert.NotEmpty(t, entry.Time)

	entries, err := logs.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.Time, entries[0].Time)
	assert.True(t, entries[0].Success)
}

func TestClear(t *testing.T) {
	logs := testLogQueries(t)

	require.NoError(t, logs.Append(&models.OperationLog{Operation: "op", Command: "c", Success: true}))
	require.NoError(t, logs.Clear())

	entries, err := logs.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentOnEmptyLog(t *testing.T) {
	logs := testLogQueries(t)

	entries, err := logs.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcurrentAppends(t *testing.T) {
	logs := testLogQueries(t)

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func(i int) {
			done <- logs.Append(&models.OperationLog{
				Operation: fmt.Sprintf("op-%d", i),
				Command:   "scoop list",
				Success:   true,
			})
		}(i)
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}

	entries, err := logs.Recent(100)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}
