package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"centralkitchen/internal/entities"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := map[entities.OrderStatusType][]entities.OrderStatusType{
		entities.OrderPending:     {entities.OrderApproved, entities.OrderRejected, entities.OrderCancelled},
		entities.OrderApproved:    {entities.OrderInProcess},
		entities.OrderInProcess:   {entities.OrderCookingDone},
		entities.OrderCookingDone: {entities.OrderDelivering},
		entities.OrderDelivering:  {entities.OrderDelivered},
	}

	all := []entities.OrderStatusType{
		entities.OrderPending,
		entities.OrderApproved,
		entities.OrderRejected,
		entities.OrderInProcess,
		entities.OrderCookingDone,
		entities.OrderDelivering,
		entities.OrderDelivered,
		entities.OrderCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, canTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTerminal(entities.OrderRejected))
	assert.True(t, IsTerminal(entities.OrderCancelled))
	assert.True(t, IsTerminal(entities.OrderDelivered))

	assert.False(t, IsTerminal(entities.OrderPending))
	assert.False(t, IsTerminal(entities.OrderApproved))
	assert.False(t, IsTerminal(entities.OrderInProcess))
	assert.False(t, IsTerminal(entities.OrderCookingDone))
	assert.False(t, IsTerminal(entities.OrderDelivering))
}
