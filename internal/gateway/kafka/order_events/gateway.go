package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"centralkitchen/internal/entities"
)

// statusChangedEvent is the wire contract of the order.status.changed topic.
type statusChangedEvent struct {
	OrderID    string  `json:"order_id"`
	StoreID    string  `json:"store_id"`
	Status     string  `json:"status"`
	Priority   string  `json:"priority"`
	Note       string  `json:"note,omitempty"`
	By         string  `json:"by,omitempty"`
	Amount     float64 `json:"amount"`
	OccurredAt string  `json:"occurred_at"`
}

// Gateway publishes order status changes to Kafka. Messages are keyed by
// order id so one order's history stays in a single partition.
type Gateway struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) PublishStatusChange(_ context.Context, order *entities.Order) error {
	last := order.StatusHistory[len(order.StatusHistory)-1]
	event := statusChangedEvent{
		OrderID:    order.ID,
		StoreID:    order.StoreID,
		Status:     order.Status.String(),
		Priority:   order.Priority.String(),
		Note:       last.Note,
		By:         last.By,
		Amount:     order.TotalAmount,
		OccurredAt: last.Timestamp.Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status changed event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(order.ID),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := g.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send status changed event: %w", err)
	}
	return nil
}
