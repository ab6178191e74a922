package store

import "github.com/josephgoksu/taskdeck/models"

// IndexCache maps task ids to their last known position in an ordered
// task slice. It is a best-effort index: a position read from it must be
// checked against the slice before use (see Resolve).
//
// Contract:
//   - entries are added lazily by Record after a successful scan;
//   - Invalidate drops the entry of a deleted id;
//   - Reconcile must run after any mutation that can shift positions.
//
// IndexCache is not safe for concurrent use; the owning store serializes
// access together with the slice it indexes.
type IndexCache struct {
	entries map[int]int
}

// NewIndexCache creates an empty cache.
func NewIndexCache() *IndexCache {
	return &IndexCache{entries: make(map[int]int)}
}

// Lookup returns the cached position for id without validating it.
func (c *IndexCache) Lookup(id int) (int, bool) {
	pos, ok := c.entries[id]
	return pos, ok
}

// Record stores the position of id, replacing any existing entry.
func (c *IndexCache) Record(id, pos int) {
	c.entries[id] = pos
}

// Invalidate removes the entry for id, if any.
func (c *IndexCache) Invalidate(id int) {
	delete(c.entries, id)
}

// Len returns the number of cached entries.
func (c *IndexCache) Len() int {
	return len(c.entries)
}

// Snapshot returns a copy of the cached entries.
func (c *IndexCache) Snapshot() map[int]int {
	out := make(map[int]int, len(c.entries))
	for id, pos := range c.entries {
		out[id] = pos
	}
	return out
}

// Resolve returns the cached position of id if it still points at a task
// carrying that id. hit is false when there is no entry or the entry is
// stale or out of range.
func (c *IndexCache) Resolve(tasks []models.Task, id int) (pos int, hit bool) {
	pos, ok := c.entries[id]
	if !ok || pos < 0 || pos >= len(tasks) || tasks[pos].ID != id {
		return -1, false
	}
	return pos, true
}

// Reconcile re-derives every cached entry from tasks: ids that no longer
// exist are dropped, the rest are pointed at their current position.
// It returns the number of entries dropped.
func (c *IndexCache) Reconcile(tasks []models.Task) int {
	dropped := 0
	for id := range c.entries {
		pos := scan(tasks, id)
		if pos < 0 {
			delete(c.entries, id)
			dropped++
			continue
		}
		c.entries[id] = pos
	}
	return dropped
}

// Coherent reports whether every entry is either out of range or points
// at a task carrying its id.
func (c *IndexCache) Coherent(tasks []models.Task) bool {
	for id, pos := range c.entries {
		if pos >= 0 && pos < len(tasks) && tasks[pos].ID != id {
			return false
		}
	}
	return true
}

// scan is the linear fallback used on a cache miss.
func scan(tasks []models.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
