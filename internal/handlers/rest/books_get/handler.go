package books_get

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
	bookEntities, err := h.service.GetBooks(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	bookDTOs := make([]dto.Book, len(bookEntities))
	for i, bookEntity := range bookEntities {
		bookDTOs[i].ISBN = bookEntity.ISBN
		bookDTOs[i].Title = bookEntity.Title
		bookDTOs[i].Author = bookEntity.Author
		bookDTOs[i].Price = bookEntity.Price
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(bookDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
