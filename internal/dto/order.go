package dto

// DeliveryDate is a plain calendar date, format 2006-01-02.
type OrderCreate struct {
	Items               []OrderItemCreate `json:"items"`
	Priority            string            `json:"priority"`
	DeliveryDate        string            `json:"delivery_date"`
	DeliveryNotes       string            `json:"delivery_notes,omitempty"`
	StorageInstructions string            `json:"storage_instructions,omitempty"`
}

type OrderItemCreate struct {
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type StatusUpdate struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

type OrderReject struct {
	Reason string `json:"reason"`
}

type Order struct {
	ID                  string         `json:"id"`
	StoreID             string         `json:"store_id"`
	StoreName           string         `json:"store_name"`
	CreatedBy           string         `json:"created_by"`
	Status              string         `json:"status"`
	Priority            string         `json:"priority"`
	DeliveryDate        string         `json:"delivery_date"`
	DeliveryNotes       string         `json:"delivery_notes,omitempty"`
	StorageInstructions string         `json:"storage_instructions,omitempty"`
	Items               []OrderItem    `json:"items"`
	TotalAmount         float64        `json:"total_amount"`
	RejectionReason     string         `json:"rejection_reason,omitempty"`
	RejectedBy          string         `json:"rejected_by,omitempty"`
	StatusHistory       []StatusChange `json:"status_history"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
}

type OrderItem struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	PricePerUnit   float64 `json:"price_per_unit"`
}

type StatusChange struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
	By        string `json:"by,omitempty"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type OrderStats struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Approved    int     `json:"approved"`
	InProcess   int     `json:"in_process"`
	Delivered   int     `json:"delivered"`
	Rejected    int     `json:"rejected"`
	TotalAmount float64 `json:"total_amount"`
}

type Ping struct {
	Message string `json:"message"`
}
