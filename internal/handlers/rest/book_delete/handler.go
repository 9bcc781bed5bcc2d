package book_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bookshop/internal/service/book"
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
	isbn := mux.Vars(r)["isbn"]

	err := h.service.DeleteBook(r.Context(), isbn)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrBookNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, book.ErrInvalidISBN):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
