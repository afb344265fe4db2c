package inventory_check_get

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

	vars := mux.Vars(r)
	storeID := vars["storeId"]
	ingredientID := vars["ingredientId"]
	if storeID == "" || ingredientID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Store staff only query their own store.
	if actor.Role == entities.RoleFranchiseStaff && storeID != actor.StoreID {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	view, err := h.service.CheckInventory(r.Context(), storeID, ingredientID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrStoreNotFound),
			errors.Is(err, ledger.ErrIngredientNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(dto.FromInventoryView(view))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
