package orders

import (
	"context"
	"sync"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/ledger"
)

// Repository keeps the order collection in process memory for the lifetime
// of the service. Orders are never deleted; iteration order is most recent
// first, which listing views rely on.
type Repository struct {
	mu     sync.RWMutex
	byID   map[string]entities.Order
	newest []string // order ids, most recent first
}

func New() *Repository {
	return &Repository{
		byID: make(map[string]entities.Order),
	}
}

func (r *Repository) Insert(_ context.Context, order entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; ok {
		return ledger.ErrConflict
	}

	r.byID[order.ID] = cloneOrder(order)
	r.newest = append([]string{order.ID}, r.newest...)
	return nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[id]
	if !ok {
		return nil, ledger.ErrOrderNotFound
	}

	clone := cloneOrder(order)
	return &clone, nil
}

func (r *Repository) Update(_ context.Context, order entities.Order) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; !ok {
		return nil, ledger.ErrOrderNotFound
	}

	r.byID[order.ID] = cloneOrder(order)

	clone := cloneOrder(order)
	return &clone, nil
}

func (r *Repository) GetAll(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]entities.Order, 0, len(r.newest))
	for _, id := range r.newest {
		all = append(all, cloneOrder(r.byID[id]))
	}
	return all, nil
}

func (r *Repository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

// cloneOrder detaches the shared slices so callers get an immutable
// snapshot, not a view into repository state.
func cloneOrder(order entities.Order) entities.Order {
	clone := order
	clone.Items = make([]entities.OrderItem, len(order.Items))
	copy(clone.Items, order.Items)
	clone.StatusHistory = make([]entities.StatusChange, len(order.StatusHistory))
	copy(clone.StatusHistory, order.StatusHistory)
	return clone
}
