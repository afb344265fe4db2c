package ledger

import "errors"

var (
	ErrEmptyItems          = errors.New("order must contain at least one item")
	ErrInvalidQuantity     = errors.New("item quantity must be positive")
	ErrDuplicateIngredient = errors.New("duplicate ingredient in order")
	ErrMissingDeliveryDate = errors.New("delivery date is required")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidStatus       = errors.New("invalid order status")

	ErrOrderNotFound      = errors.New("order not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrConflict           = errors.New("order already exists")

	ErrIllegalTransition = errors.New("illegal status transition")
)
