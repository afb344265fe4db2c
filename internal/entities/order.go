package entities

import "time"

type OrderStatusType string

// Status values are the wire strings used across the API and the
// order-events topic.
const (
	OrderPending     OrderStatusType = "Pending"
	OrderApproved    OrderStatusType = "Approved"
	OrderRejected    OrderStatusType = "Rejected"
	OrderInProcess   OrderStatusType = "In Process"
	OrderCookingDone OrderStatusType = "Cooking Done"
	OrderDelivering  OrderStatusType = "Delivering"
	OrderDelivered   OrderStatusType = "Delivered"
	OrderCancelled   OrderStatusType = "Cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PriorityType string

const (
	PriorityLow    PriorityType = "Low"
	PriorityMedium PriorityType = "Medium"
	PriorityHigh   PriorityType = "High"
	PriorityUrgent PriorityType = "Urgent"
)

func (p PriorityType) String() string {
	return string(p)
}

// Order is a supply request a franchise store submits to the central kitchen.
type Order struct {
	ID                  string
	StoreID             string
	StoreName           string
	CreatedBy           string
	Status              OrderStatusType
	Priority            PriorityType
	DeliveryDate        time.Time
	DeliveryNotes       string
	StorageInstructions string
	Items               []OrderItem
	TotalAmount         float64
	RejectionReason     string
	RejectedBy          string
	StatusHistory       []StatusChange
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type OrderItem struct {
	IngredientID   string
	IngredientName string
	Quantity       float64
	Unit           string
	PricePerUnit   float64
}

// StatusChange is one entry of the append-only audit trail. The last entry
// always matches the order's current status.
type StatusChange struct {
	Status    OrderStatusType
	Timestamp time.Time
	Note      string
	By        string
}

// OrderDraft is the caller-supplied part of a new order; provenance fields
// come from the Actor, prices from the catalog.
type OrderDraft struct {
	Items               []OrderItemDraft
	Priority            PriorityType
	DeliveryDate        time.Time
	DeliveryNotes       string
	StorageInstructions string
}

type OrderItemDraft struct {
	IngredientID string
	Quantity     float64
}

// OrderStats is a recomputed-on-demand snapshot over all orders.
type OrderStats struct {
	Total       int
	Pending     int
	Approved    int
	InProcess   int
	Delivered   int
	Rejected    int
	TotalAmount float64
}
