package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTask_ValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{name: "valid task", task: Task{ID: 1, Content: "write report"}},
		{name: "empty content", task: Task{ID: 1, Content: ""}, wantErr: true},
		{name: "zero id", task: Task{ID: 0, Content: "x"}, wantErr: true},
		{name: "negative id", task: Task{ID: -3, Content: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTaskInput_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "content present", body: `{"content":"A"}`},
		{name: "content missing", body: `{}`, wantErr: true},
		{name: "content null", body: `{"content":null}`, wantErr: true},
		{name: "content empty", body: `{"content":""}`, wantErr: true},
		{name: "whitespace is content", body: `{"content":" "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in TaskInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			err := ValidateStruct(in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var fe FieldErrors
			require.True(t, errors.As(err, &fe), "expected FieldErrors, got %T", err)
			assert.Equal(t, "content", fe[0].Field)
		})
	}
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("x"))

	err := ValidateContent("")
	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "content", fe[0].Field)
	assert.Equal(t, "required", fe[0].Rule)
	assert.Contains(t, err.Error(), "content")
}

func TestNewTaskList(t *testing.T) {
	list := NewTaskList([]Task{{ID: 1, Content: "A"}, {ID: 3, Content: "C"}}, "test")

	assert.Equal(t, 2, list.TotalCount)
	assert.Equal(t, SchemaVersion, list.Metadata.SchemaVersion)
	assert.False(t, list.Metadata.ExportedAt.IsZero())
	assert.NoError(t, ValidateStruct(list))

	empty := NewTaskList(nil, "")
	assert.NotNil(t, empty.Tasks)
	assert.Equal(t, 0, empty.TotalCount)
}

func TestTask_JSONShape(t *testing.T) {
	data, err := json.Marshal(Task{ID: 2, Content: "B"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"content":"B"}`, string(data))

	var in TaskInput
	require.NoError(t, json.Unmarshal([]byte(`{"content":"B2"}`), &in))
	assert.Equal(t, strPtr("B2"), in.Content)
}
