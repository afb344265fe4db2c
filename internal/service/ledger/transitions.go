package ledger

import "centralkitchen/internal/entities"

// statusTransitions is the closed order state machine. Statuses with no
// outgoing edges are terminal.
var statusTransitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:     {entities.OrderApproved, entities.OrderRejected, entities.OrderCancelled},
	entities.OrderApproved:    {entities.OrderInProcess},
	entities.OrderInProcess:   {entities.OrderCookingDone},
	entities.OrderCookingDone: {entities.OrderDelivering},
	entities.OrderDelivering:  {entities.OrderDelivered},
	entities.OrderRejected:    {},
	entities.OrderCancelled:   {},
	entities.OrderDelivered:   {},
}

func canTransition(from, to entities.OrderStatusType) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from status.
func IsTerminal(status entities.OrderStatusType) bool {
	return len(statusTransitions[status]) == 0
}
