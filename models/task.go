package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Task is the unit of stored data: an identifier plus its content.
type Task struct {
	ID      int    `json:"id" yaml:"id" validate:"required,min=1"`
	Content string `json:"content" yaml:"content" validate:"required"`
}

// TaskInput is the request payload for creating or updating a task.
// Content is a pointer so a missing or null field can be told apart from
// an empty string; both are rejected.
type TaskInput struct {
	Content *string `json:"content" validate:"required,min=1"`
}

// TaskList is a collection of tasks as written by export.
type TaskList struct {
	Metadata   Metadata `json:"metadata" yaml:"metadata" validate:"required"`
	Tasks      []Task   `json:"tasks" yaml:"tasks" validate:"dive"`
	TotalCount int      `json:"totalCount" yaml:"totalCount"`
}

// Metadata describes where and when a TaskList was produced.
type Metadata struct {
	SchemaVersion string    `json:"schemaVersion" yaml:"schemaVersion" validate:"required,semver"`
	ExportedAt    time.Time `json:"exportedAt" yaml:"exportedAt" validate:"required"`
	Source        string    `json:"source,omitempty" yaml:"source,omitempty"`
}

// SchemaVersion is the version stamped on exported task lists.
const SchemaVersion = "1.0.0"

// NewTaskList wraps tasks with export metadata.
func NewTaskList(tasks []Task, source string) TaskList {
	if tasks == nil {
		tasks = []Task{}
	}
	return TaskList{
		Metadata: Metadata{
			SchemaVersion: SchemaVersion,
			ExportedAt:    time.Now().UTC(),
			Source:        source,
		},
		Tasks:      tasks,
		TotalCount: len(tasks),
	}
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string
	Rule  string
	Value any
}

// FieldErrors is returned by ValidateStruct when one or more rules fail.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, fmt.Sprintf("validation failed on field '%s': rule '%s' (value: '%v')", e.Field, e.Rule, e.Value))
	}
	return strings.Join(msgs, "; ")
}

// global validator instance
var validate = validator.New()

// ValidateStruct performs validation on any struct that has validation tags.
// Failures are reported as FieldErrors keyed by the JSON-facing field name.
func ValidateStruct(s any) error {
	return toFieldErrors(validate.Struct(s))
}

// ValidateContent checks a bare content value against the same rule Task uses.
func ValidateContent(content string) error {
	err := validate.Var(content, "required")
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return FieldErrors{{Field: "content", Rule: verrs[0].Tag(), Value: content}}
	}
	return err
}

func toFieldErrors(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{
			Field: strings.ToLower(e.Field()),
			Rule:  e.Tag(),
			Value: e.Value(),
		})
	}
	return out
}
