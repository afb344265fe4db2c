package inventory_low_stock_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	authmw "centralkitchen/internal/pkg/middlewares/auth"

	"centralkitchen/internal/dto"
	"centralkitchen/internal/entities"
	"centralkitchen/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := authmw.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	storeID := mux.Vars(r)["storeId"]
	if storeID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if actor.Role == entities.RoleFranchiseStaff && storeID != actor.StoreID {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	views, err := h.service.LowStockItems(r.Context(), storeID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	list := dto.LowStockList{
		StoreID: storeID,
		Items:   make([]dto.InventoryView, 0, len(views)),
	}
	for i := range views {
		list.Items = append(list.Items, dto.FromInventoryView(&views[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(list)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
