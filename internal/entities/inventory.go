package entities

type StoreInventory struct {
	StoreID   string
	StoreName string
	Items     []InventoryItem
}

type InventoryItem struct {
	IngredientID string
	Quantity     float64
	MinLevel     float64
}

// InventoryView joins a store's stock level with catalog fields and the
// derived low/empty flags.
type InventoryView struct {
	IngredientID   string
	IngredientName string
	Unit           string
	Category       string
	PricePerUnit   float64
	Quantity       float64
	MinLevel       float64
	IsLow          bool
	IsEmpty        bool
}
