package dto

type InventoryView struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
	PricePerUnit   float64 `json:"price_per_unit"`
	Quantity       float64 `json:"quantity"`
	MinLevel       float64 `json:"min_level"`
	IsLow          bool    `json:"is_low"`
	IsEmpty        bool    `json:"is_empty"`
}

type LowStockList struct {
	StoreID string          `json:"store_id"`
	Items   []InventoryView `json:"items"`
}

type Ingredient struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Category     string  `json:"category"`
	PricePerUnit float64 `json:"price_per_unit"`
}

type IngredientList struct {
	Ingredients []Ingredient `json:"ingredients"`
}
