package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/josephgoksu/taskdeck/models"
	_ "modernc.org/sqlite"
)

// SQLiteTaskStore implements TaskStore on an SQLite database.
// AUTOINCREMENT keeps ids monotonic across deletions, matching
// IDPolicyMonotonic of the in-memory store.
type SQLiteTaskStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteTaskStore opens (or creates) the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLiteTaskStore(path string) (*SQLiteTaskStore, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes
	// writers the same way the in-memory store does.
	db.SetMaxOpenConns(1)

	s := &SQLiteTaskStore{db: db, path: path}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// initSchema creates the tasks table if it doesn't exist.
func (s *SQLiteTaskStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// ListTasks returns all tasks ordered by id, which is insertion order.
func (s *SQLiteTaskStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, content FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Content); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a new task.
func (s *SQLiteTaskStore) CreateTask(ctx context.Context, content string) (models.Task, error) {
	if err := validateContent(content); err != nil {
		return models.Task{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (content, created_at, updated_at) VALUES (?, ?, ?)`,
		content, now, now)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, fmt.Errorf("read task id: %w", err)
	}
	return models.Task{ID: int(id), Content: content}, nil
}

// GetTask retrieves a task by id.
func (s *SQLiteTaskStore) GetTask(ctx context.Context, id int) (models.Task, error) {
	var t models.Task
	err := s.db.QueryRowContext(ctx, `SELECT id, content FROM tasks WHERE id = ?`, id).Scan(&t.ID, &t.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, notFound(id)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

// UpdateTask replaces the content of an existing task.
func (s *SQLiteTaskStore) UpdateTask(ctx context.Context, id int, content string) (models.Task, error) {
	if err := validateContent(content); err != nil {
		return models.Task{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET content = ?, updated_at = ? WHERE id = ?`, content, now, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Task{}, fmt.Errorf("update task %d: %w", id, err)
	} else if n == 0 {
		return models.Task{}, notFound(id)
	}
	return models.Task{ID: id, Content: content}, nil
}

// DeleteTask removes a task by id.
func (s *SQLiteTaskStore) DeleteTask(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteTaskStore) Close() error {
	return s.db.Close()
}
