package inventory

import (
	"context"
	"sync"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/ledger"
)

// Repository holds the per-store inventory snapshots seeded at startup.
// Inventory is read-mostly: no ledger operation debits it when an order is
// created or delivered.
type Repository struct {
	mu     sync.RWMutex
	stores map[string]entities.StoreInventory
}

func New(stores []entities.StoreInventory) *Repository {
	byID := make(map[string]entities.StoreInventory, len(stores))
	for _, store := range stores {
		byID[store.StoreID] = store
	}
	return &Repository{stores: byID}
}

func (r *Repository) GetStore(_ context.Context, storeID string) (*entities.StoreInventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[storeID]
	if !ok {
		return nil, ledger.ErrStoreNotFound
	}

	clone := store
	clone.Items = make([]entities.InventoryItem, len(store.Items))
	copy(clone.Items, store.Items)
	return &clone, nil
}

func (r *Repository) GetItem(_ context.Context, storeID, ingredientID string) (*entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[storeID]
	if !ok {
		return nil, ledger.ErrStoreNotFound
	}

	for _, item := range store.Items {
		if item.IngredientID == ingredientID {
			clone := item
			return &clone, nil
		}
	}
	return nil, ledger.ErrIngredientNotFound
}

func (r *Repository) StoreIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.stores))
	for id := range r.stores {
		ids = append(ids, id)
	}
	return ids, nil
}
