package notifier

import (
	"context"
	"fmt"

	"centralkitchen/internal/entities"
	"centralkitchen/pkg/logger"
)

// StatusChangeNotice is the consumed form of an order.status.changed event.
type StatusChangeNotice struct {
	OrderID string
	StoreID string
	Status  entities.OrderStatusType
	Note    string
	By      string
}

// Notification is a role-addressed message derived from a status change.
type Notification struct {
	OrderID  string
	StoreID  string
	Audience entities.RoleType
	Message  string
}

// audienceByStatus routes each status to the role that has to act on it:
// new orders go to the coordinator, kitchen statuses to the kitchen, the
// rest back to the submitting store's staff.
var audienceByStatus = map[entities.OrderStatusType]entities.RoleType{
	entities.OrderPending:     entities.RoleSupplyCoordinator,
	entities.OrderApproved:    entities.RoleFranchiseStaff,
	entities.OrderRejected:    entities.RoleFranchiseStaff,
	entities.OrderCancelled:   entities.RoleSupplyCoordinator,
	entities.OrderInProcess:   entities.RoleCentralKitchen,
	entities.OrderCookingDone: entities.RoleCentralKitchen,
	entities.OrderDelivering:  entities.RoleFranchiseStaff,
	entities.OrderDelivered:   entities.RoleFranchiseStaff,
}

type Service struct {
	log logger.Logger
}

func New(log logger.Logger) *Service {
	return &Service{
		log: log.With(),
	}
}

// ProcessStatusChange turns one status-change event into a notification and
// records it. Unknown statuses are reported back so the caller can skip the
// message instead of retrying it forever.
func (s *Service) ProcessStatusChange(_ context.Context, notice StatusChangeNotice) (*Notification, error) {
	audience, ok := audienceByStatus[notice.Status]
	if !ok {
		return nil, fmt.Errorf("status %q: %w", notice.Status, ErrUnknownStatus)
	}

	message := fmt.Sprintf("Order %s is now %s", notice.OrderID, notice.Status)
	if notice.Note != "" {
		message = fmt.Sprintf("%s: %s", message, notice.Note)
	}

	notification := Notification{
		OrderID:  notice.OrderID,
		StoreID:  notice.StoreID,
		Audience: audience,
		Message:  message,
	}

	s.log.With(
		logger.NewField("order", notification.OrderID),
		logger.NewField("store", notification.StoreID),
		logger.NewField("status", notice.Status.String()),
		logger.NewField("audience", audience.String()),
	).Info("order notification")

	notificationsTotal.WithLabelValues(notice.Status.String(), audience.String()).Inc()

	return &notification, nil
}
