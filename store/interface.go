package store

import (
	"context"

	"github.com/josephgoksu/taskdeck/models"
)

// TaskStore defines the interface for task persistence.
// It outlines the contract for managing tasks: CRUD operations over an
// ordered collection plus resource cleanup.
type TaskStore interface {
	// ListTasks returns every task in insertion order.
	// The returned slice is a copy; callers may keep or modify it.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// CreateTask validates content, assigns the next identifier and appends
	// the new task. It returns a *ValidationError when content is empty.
	CreateTask(ctx context.Context, content string) (models.Task, error)

	// GetTask retrieves a task by its identifier.
	// It returns an error wrapping ErrNotFound if no task carries that id.
	GetTask(ctx context.Context, id int) (models.Task, error)

	// UpdateTask replaces the content of an existing task, keeping its id
	// and position. It returns ErrNotFound for unknown ids and a
	// *ValidationError for empty content.
	UpdateTask(ctx context.Context, id int, content string) (models.Task, error)

	// DeleteTask removes a task. Later tasks keep their relative order.
	// It returns ErrNotFound for unknown ids.
	DeleteTask(ctx context.Context, id int) error

	// Close releases any resources held by the store, such as database
	// connections. It should be called when the store is no longer needed.
	Close() error
}

// StatsProvider is implemented by stores that track index cache behaviour.
type StatsProvider interface {
	Stats() Stats
}
