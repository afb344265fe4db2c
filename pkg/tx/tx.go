package tx

import (
	"context"
	"sync"
)

// Manager serializes mutating operations over the in-process state.
// Everything executed through Do holds one exclusive lock, so a
// read-check-write sequence inside fn is observed as a single atomic unit
// by every other caller going through the same Manager.
type Manager struct {
	mu sync.Mutex
}

func New() *Manager {
	return &Manager{}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}
