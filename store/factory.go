package store

import "fmt"

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Open builds the TaskStore for the configured backend.
func Open(backend, path string, policy IDPolicy) (TaskStore, error) {
	switch backend {
	case "", BackendMemory:
		return NewIndexedTaskStore(WithIDPolicy(policy)), nil
	case BackendSQLite:
		if policy == IDPolicyLength {
			return nil, fmt.Errorf("id policy %q is not supported by the %s backend", policy, backend)
		}
		return NewSQLiteTaskStore(path)
	default:
		return nil, fmt.Errorf("unsupported store backend %q (want memory or sqlite)", backend)
	}
}
