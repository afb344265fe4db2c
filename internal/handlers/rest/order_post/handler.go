package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	authmw "centralkitchen/internal/pkg/middlewares/auth"

	"centralkitchen/internal/dto"
	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/ledger"
	"centralkitchen/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	publisher EventPublisher
}

func New(log handlerLogger, service Service, publisher EventPublisher) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		publisher: publisher,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := authmw.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if actor.Role != entities.RoleFranchiseStaff {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var req dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryDate, err := dto.ParseDeliveryDate(req.DeliveryDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItemDraft, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entities.OrderItemDraft{
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
		})
	}

	order, err := h.service.CreateOrder(r.Context(), entities.OrderDraft{
		Items:               items,
		Priority:            entities.PriorityType(req.Priority),
		DeliveryDate:        deliveryDate,
		DeliveryNotes:       req.DeliveryNotes,
		StorageInstructions: req.StorageInstructions,
	}, *actor)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrEmptyItems),
			errors.Is(err, ledger.ErrInvalidQuantity),
			errors.Is(err, ledger.ErrDuplicateIngredient),
			errors.Is(err, ledger.ErrMissingDeliveryDate),
			errors.Is(err, ledger.ErrInvalidPriority):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ledger.ErrIngredientNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if err := h.publisher.PublishStatusChange(r.Context(), order); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("order_id", order.ID),
		).Error("publish status change event")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(order))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
