package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/josephgoksu/taskdeck/models"
)

// IDPolicy selects how new task ids are assigned.
type IDPolicy string

const (
	// IDPolicyMonotonic assigns ids from a counter that never goes back,
	// so ids are not reused after deletion.
	IDPolicyMonotonic IDPolicy = "monotonic"
	// IDPolicyLength assigns len(tasks)+1. After a deletion this can hand
	// out an id that a surviving task already carries. Kept for
	// compatibility with data produced by older deployments.
	IDPolicyLength IDPolicy = "length"
)

// ParseIDPolicy converts a config value into an IDPolicy.
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch IDPolicy(s) {
	case "", IDPolicyMonotonic:
		return IDPolicyMonotonic, nil
	case IDPolicyLength:
		return IDPolicyLength, nil
	default:
		return "", fmt.Errorf("unsupported id policy %q (want monotonic or length)", s)
	}
}

// Stats counts index cache activity.
type Stats struct {
	Hits            int64 `json:"hits"`
	Misses          int64 `json:"misses"`
	Reconciliations int64 `json:"reconciliations"`
	CacheEntries    int   `json:"cacheEntries"`
	Tasks           int   `json:"tasks"`
}

// IndexedTaskStore keeps tasks in an ordered slice, the source of truth,
// and an IndexCache from id to slice position to skip the linear scan on
// repeated lookups. Both are guarded by one mutex because the coherence
// invariant spans the two.
type IndexedTaskStore struct {
	mu     sync.Mutex
	tasks  []models.Task
	cache  *IndexCache
	nextID int
	policy IDPolicy
	stats  Stats
}

// Option configures an IndexedTaskStore.
type Option func(*IndexedTaskStore)

// WithIDPolicy overrides the default monotonic id assignment.
func WithIDPolicy(p IDPolicy) Option {
	return func(s *IndexedTaskStore) {
		s.policy = p
	}
}

// NewIndexedTaskStore creates an empty store.
func NewIndexedTaskStore(opts ...Option) *IndexedTaskStore {
	s := &IndexedTaskStore{
		cache:  NewIndexCache(),
		nextID: 1,
		policy: IDPolicyMonotonic,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTasks returns all tasks in insertion order.
func (s *IndexedTaskStore) ListTasks(_ context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// CreateTask appends a new task. The cache is left alone; the new id gets
// an entry on its first lookup.
func (s *IndexedTaskStore) CreateTask(_ context.Context, content string) (models.Task, error) {
	if err := validateContent(content); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{ID: s.assignID(), Content: content}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// GetTask returns the task with the given id.
func (s *IndexedTaskStore) GetTask(_ context.Context, id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.indexOf(id)
	if pos < 0 {
		return models.Task{}, notFound(id)
	}
	return s.tasks[pos], nil
}

// UpdateTask replaces the content of the task in place and reconciles the
// cache afterwards.
func (s *IndexedTaskStore) UpdateTask(_ context.Context, id int, content string) (models.Task, error) {
	if err := validateContent(content); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.indexOf(id)
	if pos < 0 {
		return models.Task{}, notFound(id)
	}
	s.tasks[pos] = models.Task{ID: id, Content: content}
	s.reconcile()
	return s.tasks[pos], nil
}

// DeleteTask removes the task, drops its cache entry and repositions the
// remaining entries.
func (s *IndexedTaskStore) DeleteTask(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.indexOf(id)
	if pos < 0 {
		return notFound(id)
	}
	s.tasks = slices.Delete(s.tasks, pos, pos+1)
	s.cache.Invalidate(id)
	s.reconcile()
	return nil
}

// Stats returns a snapshot of cache counters.
func (s *IndexedTaskStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stats
	st.CacheEntries = s.cache.Len()
	st.Tasks = len(s.tasks)
	return st
}

// Close is a no-op; the store holds no external resources.
func (s *IndexedTaskStore) Close() error {
	return nil
}

// indexOf resolves id to a slice position, preferring a validated cache
// entry and falling back to a scan that records its result.
// Callers must hold s.mu.
func (s *IndexedTaskStore) indexOf(id int) int {
	if pos, hit := s.cache.Resolve(s.tasks, id); hit {
		s.stats.Hits++
		return pos
	}
	s.stats.Misses++
	pos := scan(s.tasks, id)
	if pos >= 0 {
		s.cache.Record(id, pos)
	}
	return pos
}

// Callers must hold s.mu.
func (s *IndexedTaskStore) reconcile() {
	s.cache.Reconcile(s.tasks)
	s.stats.Reconciliations++
}

// Callers must hold s.mu.
func (s *IndexedTaskStore) assignID() int {
	if s.policy == IDPolicyLength {
		return len(s.tasks) + 1
	}
	id := s.nextID
	s.nextID++
	return id
}
