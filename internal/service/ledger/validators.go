package ledger

import "centralkitchen/internal/entities"

func isValidStatus(status entities.OrderStatusType) bool {
	_, ok := statusTransitions[status]
	return ok
}

func isValidPriority(priority entities.PriorityType) bool {
	switch priority {
	case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh, entities.PriorityUrgent:
		return true
	default:
		return false
	}
}

func validateDraft(draft entities.OrderDraft) error {
	if len(draft.Items) == 0 {
		return ErrEmptyItems
	}
	if draft.DeliveryDate.IsZero() {
		return ErrMissingDeliveryDate
	}
	if !isValidPriority(draft.Priority) {
		return ErrInvalidPriority
	}

	seen := make(map[string]struct{}, len(draft.Items))
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if _, ok := seen[item.IngredientID]; ok {
			return ErrDuplicateIngredient
		}
		seen[item.IngredientID] = struct{}{}
	}
	return nil
}
