package order_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
	if actor.Role != entities.RoleSupplyCoordinator {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req dto.OrderReject
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if req.Reason == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.Reject(r.Context(), id, req.Reason, actor.Name)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ledger.ErrIllegalTransition):
			w.WriteHeader(http.StatusConflict)
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
	err = json.NewEncoder(w).Encode(dto.FromOrder(order))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
