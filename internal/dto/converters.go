package dto

import (
	"time"

	"centralkitchen/internal/entities"
)

const deliveryDateFormat = "2006-01-02"

func FromOrder(order *entities.Order) Order {
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			IngredientID:   item.IngredientID,
			IngredientName: item.IngredientName,
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			PricePerUnit:   item.PricePerUnit,
		})
	}

	history := make([]StatusChange, 0, len(order.StatusHistory))
	for _, change := range order.StatusHistory {
		history = append(history, StatusChange{
			Status:    change.Status.String(),
			Timestamp: change.Timestamp.Format(time.RFC3339),
			Note:      change.Note,
			By:        change.By,
		})
	}

	return Order{
		ID:                  order.ID,
		StoreID:             order.StoreID,
		StoreName:           order.StoreName,
		CreatedBy:           order.CreatedBy,
		Status:              order.Status.String(),
		Priority:            order.Priority.String(),
		DeliveryDate:        order.DeliveryDate.Format(deliveryDateFormat),
		DeliveryNotes:       order.DeliveryNotes,
		StorageInstructions: order.StorageInstructions,
		Items:               items,
		TotalAmount:         order.TotalAmount,
		RejectionReason:     order.RejectionReason,
		RejectedBy:          order.RejectedBy,
		StatusHistory:       history,
		CreatedAt:           order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           order.UpdatedAt.Format(time.RFC3339),
	}
}

func FromOrders(orders []entities.Order) OrderList {
	list := OrderList{Orders: make([]Order, 0, len(orders))}
	for i := range orders {
		list.Orders = append(list.Orders, FromOrder(&orders[i]))
	}
	return list
}

func FromStats(stats *entities.OrderStats) OrderStats {
	return OrderStats{
		Total:       stats.Total,
		Pending:     stats.Pending,
		Approved:    stats.Approved,
		InProcess:   stats.InProcess,
		Delivered:   stats.Delivered,
		Rejected:    stats.Rejected,
		TotalAmount: stats.TotalAmount,
	}
}

func FromInventoryView(view *entities.InventoryView) InventoryView {
	return InventoryView{
		IngredientID:   view.IngredientID,
		IngredientName: view.IngredientName,
		Unit:           view.Unit,
		Category:       view.Category,
		PricePerUnit:   view.PricePerUnit,
		Quantity:       view.Quantity,
		MinLevel:       view.MinLevel,
		IsLow:          view.IsLow,
		IsEmpty:        view.IsEmpty,
	}
}

func FromUser(user *entities.User) User {
	return User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		StoreID:   user.StoreID,
		StoreName: user.StoreName,
	}
}

// ParseDeliveryDate parses the date-only wire format.
func ParseDeliveryDate(raw string) (time.Time, error) {
	return time.Parse(deliveryDateFormat, raw)
}
