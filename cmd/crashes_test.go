package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/taskdeck/internal/logger"
)

func TestCrashesCmd(t *testing.T) {
	tmp := isolateCLI(t)

	out, err := runCLI(t, "crashes")
	require.NoError(t, err)
	assert.Contains(t, out, "No crash logs.")

	logger.SetBasePath(filepath.Join(tmp, "home", ".taskdeck"))
	_, err = logger.RecordPanic("first", "req-1", "GET /tasks")
	require.NoError(t, err)
	_, err = logger.RecordPanic("second", "req-2", "PUT /tasks/1")
	require.NoError(t, err)

	out, err = runCLI(t, "crashes")
	require.NoError(t, err)
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "crash_")

	var paths []string
	out, err = runCLI(t, "crashes", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &paths))
	assert.Len(t, paths, 2)

	out, err = runCLI(t, "crashes", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "second", "1 is the most recent")
	assert.Contains(t, out, "req-2")

	_, err = runCLI(t, "crashes", "3")
	assert.Error(t, err)
}
