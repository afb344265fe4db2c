package stats_export

import (
	"context"
	"fmt"
	"time"

	"centralkitchen/internal/entities"
)

// StatsExport periodically republishes the ledger stats and the per-store
// low-stock counts as Prometheus gauges.
type StatsExport struct {
	service  Service
	stores   StoreLister
	interval time.Duration
}

func NewStatsExport(service Service, stores StoreLister, interval time.Duration) *StatsExport {
	return &StatsExport{
		service:  service,
		stores:   stores,
		interval: interval,
	}
}

func (s *StatsExport) TTL() time.Duration {
	return s.interval
}

func (s *StatsExport) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	stats, err := s.service.Stats(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("collect order stats: %w", err)
	}

	ordersByStatus.WithLabelValues(entities.OrderPending.String()).Set(float64(stats.Pending))
	ordersByStatus.WithLabelValues(entities.OrderApproved.String()).Set(float64(stats.Approved))
	ordersByStatus.WithLabelValues(entities.OrderInProcess.String()).Set(float64(stats.InProcess))
	ordersByStatus.WithLabelValues(entities.OrderDelivered.String()).Set(float64(stats.Delivered))
	ordersByStatus.WithLabelValues(entities.OrderRejected.String()).Set(float64(stats.Rejected))
	ordersTotalAmount.Set(stats.TotalAmount)

	storeIDs, err := s.stores.StoreIDs(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("list stores: %w", err)
	}

	for _, storeID := range storeIDs {
		views, err := s.service.LowStockItems(ctxWithTimeout, storeID)
		if err != nil {
			return fmt.Errorf("low stock items for %s: %w", storeID, err)
		}
		lowStockItems.WithLabelValues(storeID).Set(float64(len(views)))
	}

	return nil
}

func (s *StatsExport) Info() string {
	return "stats export"
}
