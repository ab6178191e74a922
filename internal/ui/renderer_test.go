package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephgoksu/taskdeck/models"
)

func TestTableRenderer_Display(t *testing.T) {
	var buf bytes.Buffer
	r := &TableRenderer{W: &buf, Plain: true}

	require.NoError(t, r.Display([]models.Task{{ID: 2, Content: "B"}, {ID: 3, Content: "C"}}))

	want := " ID  CONTENT\n" +
		" ───────────\n" +
		" 2   B\n" +
		" 3   C\n" +
		"\n2 task(s)\n"
	assert.Equal(t, want, buf.String())
}

func TestTableRenderer_DisplayEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := &TableRenderer{W: &buf, Plain: true}

	require.NoError(t, r.Display(nil))
	assert.Equal(t, "No tasks.\n", buf.String())
}

func TestTableRenderer_DisplayTask(t *testing.T) {
	var buf bytes.Buffer
	r := &TableRenderer{W: &buf, Plain: true}

	require.NoError(t, r.DisplayTask(models.Task{ID: 7, Content: "Ship it"}))
	assert.Equal(t, "Task 7\nShip it\n", buf.String())
}

func TestTableRenderer_Success(t *testing.T) {
	var buf bytes.Buffer
	r := &TableRenderer{W: &buf, Plain: true}

	require.NoError(t, r.Success("Deleted task 3"))
	assert.Equal(t, "✓ Deleted task 3\n", buf.String())
}

func TestNewTableRenderer_BufferIsPlain(t *testing.T) {
	r := NewTableRenderer(&bytes.Buffer{})
	assert.True(t, r.Plain)
}

func TestJSONRenderer_Display(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONRenderer{W: &buf}

	require.NoError(t, r.Display([]models.Task{{ID: 1, Content: "A"}}))

	var got []models.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []models.Task{{ID: 1, Content: "A"}}, got)
}

func TestJSONRenderer_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{W: &buf}).Display(nil))
	assert.JSONEq(t, "[]", buf.String())
}

var (
	_ Renderer = (*TableRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
)
