package sale

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes sale HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.list)          // GET    /sales/
		r.Post("/", h.record)       // POST   /sales/
		r.Delete("/{id}", h.remove) // DELETE /sales/{id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.ListSales(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, sales)
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	id, err := h.service.RecordSale(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{"message": "Sale recorded", "id": id})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": ErrNotFound.Error()})
		return
	}
	if err := h.service.RemoveSale(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Sale removed"})
}

// respondError maps service errors to status codes and JSON bodies.
func respondError(w http.ResponseWriter, err error) {
	var valErr *ValidationError
	switch {
	case errors.As(err, &valErr):
		respond(w, http.StatusBadRequest, map[string]string{"error": valErr.Error()})
	case errors.Is(err, ErrInsufficientStock):
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrProductNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
