package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/repository/orders"
	"centralkitchen/internal/service/ledger"
)

func newOrder(id string) entities.Order {
	now := time.Now().UTC()
	return entities.Order{
		ID:     id,
		Status: entities.OrderPending,
		Items: []entities.OrderItem{
			{IngredientID: "ING001", Quantity: 1},
		},
		StatusHistory: []entities.StatusChange{
			{Status: entities.OrderPending, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("insert rejects duplicate ids", func(t *testing.T) {
		t.Parallel()

		repo := orders.New()
		require.NoError(t, repo.Insert(ctx, newOrder("ORD-2026-001")))
		assert.ErrorIs(t, repo.Insert(ctx, newOrder("ORD-2026-001")), ledger.ErrConflict)
	})

	t.Run("get unknown id", func(t *testing.T) {
		t.Parallel()

		repo := orders.New()
		_, err := repo.GetByID(ctx, "ORD-2026-404")
		assert.ErrorIs(t, err, ledger.ErrOrderNotFound)
	})

	t.Run("update unknown id", func(t *testing.T) {
		t.Parallel()

		repo := orders.New()
		_, err := repo.Update(ctx, newOrder("ORD-2026-404"))
		assert.ErrorIs(t, err, ledger.ErrOrderNotFound)
	})

	t.Run("get all is most recent first", func(t *testing.T) {
		t.Parallel()

		repo := orders.New()
		require.NoError(t, repo.Insert(ctx, newOrder("ORD-2026-001")))
		require.NoError(t, repo.Insert(ctx, newOrder("ORD-2026-002")))
		require.NoError(t, repo.Insert(ctx, newOrder("ORD-2026-003")))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "ORD-2026-003", all[0].ID)
		assert.Equal(t, "ORD-2026-002", all[1].ID)
		assert.Equal(t, "ORD-2026-001", all[2].ID)
	})

	t.Run("count", func(t *testing.T) {
		t.Parallel()

		repo := orders.New()
		require.NoError(t, repo.Insert(ctx, newOrder("ORD-2026-001")))
		require.NoError(t, repo.Insert(ctx, newOrder("ORD-2026-002")))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("stored orders are detached from caller slices", func(t *testing.T) {
		t.Parallel()

		repo := orders.New()
		original := newOrder("ORD-2026-001")
		require.NoError(t, repo.Insert(ctx, original))

		original.StatusHistory[0].Note = "tampered"
		original.Items[0].Quantity = 9000

		stored, err := repo.GetByID(ctx, "ORD-2026-001")
		require.NoError(t, err)
		assert.Empty(t, stored.StatusHistory[0].Note)
		assert.InDelta(t, 1, stored.Items[0].Quantity, 0.001)
	})
}
