package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/notifier"
	"centralkitchen/pkg/logger"
)

// statusChangedEvent mirrors the producer side of the order.status.changed
// topic. Unknown fields are ignored.
type statusChangedEvent struct {
	OrderID string `json:"order_id"`
	StoreID string `json:"store_id"`
	Status  string `json:"status"`
	Note    string `json:"note"`
	By      string `json:"by"`
}

type Handler struct {
	notifierService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notifierService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notifierService:          notifierService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. It returns true when
// ConsumeClaim has to stop (context cancelled, message left unmarked for
// redelivery) and false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	notification, err := h.notifierService.ProcessStatusChange(ctx, notifier.StatusChangeNotice{
		OrderID: event.OrderID,
		StoreID: event.StoreID,
		Status:  entities.OrderStatusType(event.Status),
		Note:    event.Note,
		By:      event.By,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notifier.ErrUnknownStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler unknown status for order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("audience", notification.Audience.String()),
	).Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
