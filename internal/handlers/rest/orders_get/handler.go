package orders_get

import (
	"encoding/json"
	"net/http"

	"bookshop/internal/dto"
	"bookshop/pkg/logger"
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
	orderEntities, err := h.service.GetOrders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i].ID = orderEntity.ID
		orderDTOs[i].BookISBN = orderEntity.BookISBN
		orderDTOs[i].BookName = orderEntity.BookName
		orderDTOs[i].BookPrice = orderEntity.BookPrice
		orderDTOs[i].Quantity = orderEntity.Quantity
		orderDTOs[i].Status = orderEntity.Status.String()
		orderDTOs[i].CreatedAt = orderEntity.CreatedAt
		orderDTOs[i].LastModifiedAt = orderEntity.LastModifiedAt
		orderDTOs[i].Version = orderEntity.Version
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
