package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"centralkitchen/internal/entities"
)

const (
	noteOrderCreated   = "Order created"
	noteOrderCancelled = "Order cancelled by store"
)

// Ledger owns the authoritative set of orders and is the only sanctioned
// mutation path. Every mutating operation runs inside the TxManager, so the
// status update and the history append are applied as one atomic unit and
// concurrent writers never interleave mid-update.
type Ledger struct {
	orders    OrderRepository
	inventory InventoryRepository
	catalog   Catalog
	txManager TxManager
}

func New(orders OrderRepository, inventory InventoryRepository, catalog Catalog, txManager TxManager) *Ledger {
	return &Ledger{
		orders:    orders,
		inventory: inventory,
		catalog:   catalog,
		txManager: txManager,
	}
}

// CreateOrder validates the draft, prices it against the catalog and inserts
// a Pending order at the head of the ledger.
//
// The id sequence is scoped to this ledger instance (current size + 1);
// nothing guarantees uniqueness across independent ledgers.
func (l *Ledger) CreateOrder(ctx context.Context, draft entities.OrderDraft, actor entities.Actor) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	items := make([]entities.OrderItem, 0, len(draft.Items))
	var total float64
	for _, itemDraft := range draft.Items {
		ingredient, err := l.catalog.GetByID(ctx, itemDraft.IngredientID)
		if err != nil {
			return nil, fmt.Errorf("price order item %s: %w", itemDraft.IngredientID, err)
		}
		items = append(items, entities.OrderItem{
			IngredientID:   ingredient.ID,
			IngredientName: ingredient.Name,
			Quantity:       itemDraft.Quantity,
			Unit:           ingredient.Unit,
			PricePerUnit:   ingredient.PricePerUnit,
		})
		total += itemDraft.Quantity * ingredient.PricePerUnit
	}

	var order entities.Order
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := l.orders.Count(ctx)
		if err != nil {
			return fmt.Errorf("count orders: %w", err)
		}

		now := time.Now().UTC()
		order = entities.Order{
			ID:                  fmt.Sprintf("ORD-%d-%03d", now.Year(), count+1),
			StoreID:             actor.StoreID,
			StoreName:           actor.StoreName,
			CreatedBy:           actor.Name,
			Status:              entities.OrderPending,
			Priority:            draft.Priority,
			DeliveryDate:        draft.DeliveryDate,
			DeliveryNotes:       draft.DeliveryNotes,
			StorageInstructions: draft.StorageInstructions,
			Items:               items,
			TotalAmount:         total,
			StatusHistory: []entities.StatusChange{
				{
					Status:    entities.OrderPending,
					Timestamp: now,
					Note:      noteOrderCreated,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := l.orders.Insert(ctx, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// Transition moves the order to newStatus if the state machine allows it.
// A failed transition leaves the order unmodified.
func (l *Ledger) Transition(ctx context.Context, orderID string, newStatus entities.OrderStatusType, note, by string) (*entities.Order, error) {
	if !isValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := l.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !canTransition(order.Status, newStatus) {
			return fmt.Errorf("%s -> %s: %w", order.Status, newStatus, ErrIllegalTransition)
		}

		l.applyStatus(order, newStatus, note, by)

		updated, err = l.orders.Update(ctx, *order)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Reject refuses a Pending order and records who rejected it and why.
func (l *Ledger) Reject(ctx context.Context, orderID, reason, rejectedBy string) (*entities.Order, error) {
	var updated *entities.Order
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := l.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status != entities.OrderPending {
			return fmt.Errorf("%s -> %s: %w", order.Status, entities.OrderRejected, ErrIllegalTransition)
		}

		l.applyStatus(order, entities.OrderRejected, fmt.Sprintf("Order rejected: %s", reason), rejectedBy)
		order.RejectionReason = reason
		order.RejectedBy = rejectedBy

		updated, err = l.orders.Update(ctx, *order)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Cancel is the store-initiated withdrawal of an order. Only Pending orders
// are cancellable.
func (l *Ledger) Cancel(ctx context.Context, orderID string) (*entities.Order, error) {
	var updated *entities.Order
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := l.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status != entities.OrderPending {
			return fmt.Errorf("%s -> %s: %w", order.Status, entities.OrderCancelled, ErrIllegalTransition)
		}

		l.applyStatus(order, entities.OrderCancelled, noteOrderCancelled, "")

		updated, err = l.orders.Update(ctx, *order)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (l *Ledger) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	order, err := l.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// ListOrders returns all orders, most recent first.
func (l *Ledger) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := l.orders.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// CheckInventory joins the store's live quantity for one ingredient with the
// catalog and derives the low/empty flags.
func (l *Ledger) CheckInventory(ctx context.Context, storeID, ingredientID string) (*entities.InventoryView, error) {
	item, err := l.inventory.GetItem(ctx, storeID, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}

	ingredient, err := l.catalog.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("get ingredient: %w", err)
	}

	view := newInventoryView(*item, ingredient)
	return &view, nil
}

// LowStockItems returns every item at or below its minimum level, enriched
// with catalog fields. An unknown store yields an empty result, not an
// error; callers needing the distinction do a separate existence check.
func (l *Ledger) LowStockItems(ctx context.Context, storeID string) ([]entities.InventoryView, error) {
	store, err := l.inventory.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return []entities.InventoryView{}, nil
		}
		return nil, fmt.Errorf("get store inventory: %w", err)
	}

	views := make([]entities.InventoryView, 0, len(store.Items))
	for _, item := range store.Items {
		if item.Quantity > item.MinLevel {
			continue
		}
		// Items missing from the catalog keep zero-valued catalog fields
		// rather than being hidden from the low-stock report.
		ingredient, err := l.catalog.GetByID(ctx, item.IngredientID)
		if err != nil && !errors.Is(err, ErrIngredientNotFound) {
			return nil, fmt.Errorf("get ingredient: %w", err)
		}
		views = append(views, newInventoryView(item, ingredient))
	}
	return views, nil
}

// Stats recomputes the per-status counts and the grand total on demand. The
// collection is small and in-memory, so nothing is maintained incrementally.
func (l *Ledger) Stats(ctx context.Context) (*entities.OrderStats, error) {
	orders, err := l.orders.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	stats := entities.OrderStats{Total: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case entities.OrderPending:
			stats.Pending++
		case entities.OrderApproved:
			stats.Approved++
		case entities.OrderInProcess:
			stats.InProcess++
		case entities.OrderDelivered:
			stats.Delivered++
		case entities.OrderRejected:
			stats.Rejected++
		}
		stats.TotalAmount += order.TotalAmount
	}
	return &stats, nil
}

func (l *Ledger) applyStatus(order *entities.Order, status entities.OrderStatusType, note, by string) {
	now := time.Now().UTC()
	order.Status = status
	order.UpdatedAt = now
	order.StatusHistory = append(order.StatusHistory, entities.StatusChange{
		Status:    status,
		Timestamp: now,
		Note:      note,
		By:        by,
	})
}

func newInventoryView(item entities.InventoryItem, ingredient *entities.Ingredient) entities.InventoryView {
	view := entities.InventoryView{
		IngredientID: item.IngredientID,
		Quantity:     item.Quantity,
		MinLevel:     item.MinLevel,
		IsLow:        item.Quantity <= item.MinLevel,
		IsEmpty:      item.Quantity == 0,
	}
	if ingredient != nil {
		view.IngredientName = ingredient.Name
		view.Unit = ingredient.Unit
		view.Category = ingredient.Category
		view.PricePerUnit = ingredient.PricePerUnit
	}
	return view
}
