package notifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/notifier"
	"centralkitchen/pkg/logger"
)

func TestProcessStatusChange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name         string
		status       entities.OrderStatusType
		wantAudience entities.RoleType
	}{
		{name: "pending goes to the coordinator", status: entities.OrderPending, wantAudience: entities.RoleSupplyCoordinator},
		{name: "approved goes back to the store", status: entities.OrderApproved, wantAudience: entities.RoleFranchiseStaff},
		{name: "rejected goes back to the store", status: entities.OrderRejected, wantAudience: entities.RoleFranchiseStaff},
		{name: "cancelled goes to the coordinator", status: entities.OrderCancelled, wantAudience: entities.RoleSupplyCoordinator},
		{name: "in process goes to the kitchen", status: entities.OrderInProcess, wantAudience: entities.RoleCentralKitchen},
		{name: "cooking done goes to the kitchen", status: entities.OrderCookingDone, wantAudience: entities.RoleCentralKitchen},
		{name: "delivering goes to the store", status: entities.OrderDelivering, wantAudience: entities.RoleFranchiseStaff},
		{name: "delivered goes to the store", status: entities.OrderDelivered, wantAudience: entities.RoleFranchiseStaff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := notifier.New(logger.NewNop())

			notification, err := s.ProcessStatusChange(ctx, notifier.StatusChangeNotice{
				OrderID: "ORD-2026-001",
				StoreID: "STORE001",
				Status:  tt.status,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAudience, notification.Audience)
			assert.Contains(t, notification.Message, "ORD-2026-001")
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()

		s := notifier.New(logger.NewNop())

		_, err := s.ProcessStatusChange(ctx, notifier.StatusChangeNotice{
			OrderID: "ORD-2026-001",
			Status:  "Shipped",
		})
		assert.ErrorIs(t, err, notifier.ErrUnknownStatus)
	})

	t.Run("note is appended to the message", func(t *testing.T) {
		t.Parallel()

		s := notifier.New(logger.NewNop())

		notification, err := s.ProcessStatusChange(ctx, notifier.StatusChangeNotice{
			OrderID: "ORD-2026-001",
			Status:  entities.OrderRejected,
			Note:    "Order rejected: Thiếu ngân sách",
		})
		require.NoError(t, err)
		assert.Contains(t, notification.Message, "Thiếu ngân sách")
	})
}
