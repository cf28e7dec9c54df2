package restock

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes restock order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/restock-orders", func(r chi.Router) {
		r.Get("/", h.list)            // GET    /restock-orders/
		r.Post("/", h.place)          // POST   /restock-orders/
		r.Put("/{id}", h.complete)    // PUT    /restock-orders/{id}
		r.Delete("/{id}", h.delete)   // DELETE /restock-orders/{id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respondError(w, err, "")
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) place(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	id, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		respondError(w, err, "")
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{"message": "Restock order placed", "id": id})
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "Order not found or already completed"})
		return
	}
	if err := h.service.CompleteOrder(r.Context(), id); err != nil {
		respondError(w, err, "Order not found or already completed")
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Restock order completed"})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": "Order not found or already processed"})
		return
	}
	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		respondError(w, err, "Order not found or already processed")
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Restock order deleted"})
}

// respondError maps service errors to status codes and JSON bodies.
// notFoundMsg overrides the ErrNotFound body so each endpoint can state
// whether the order was already completed or already processed.
func respondError(w http.ResponseWriter, err error, notFoundMsg string) {
	var valErr *ValidationError
	switch {
	case errors.As(err, &valErr):
		respond(w, http.StatusBadRequest, map[string]string{"error": valErr.Error()})
	case errors.Is(err, ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = err.Error()
		}
		respond(w, http.StatusNotFound, map[string]string{"error": notFoundMsg})
	case errors.Is(err, ErrProductNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
