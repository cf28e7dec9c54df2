package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes product HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.list)           // GET    /products/
		r.Post("/", h.create)        // POST   /products/
		r.Get("/{id}", h.get)        // GET    /products/{id}
		r.Put("/{id}", h.update)     // PUT    /products/{id}
		r.Delete("/{id}", h.delete)  // DELETE /products/{id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": ErrNotFound.Error()})
		return
	}
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	id, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{"message": "Product added", "id": id})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": ErrNotFound.Error()})
		return
	}
	var req SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.UpdateProduct(r.Context(), id, req); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Product updated"})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": ErrNotFound.Error()})
		return
	}
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// respondError maps service errors to status codes and JSON bodies.
func respondError(w http.ResponseWriter, err error) {
	var refErr *ReferencedError
	var valErr *ValidationError
	switch {
	case errors.As(err, &refErr):
		respond(w, http.StatusBadRequest, map[string]interface{}{
			"error":      refErr.Error(),
			"salesCount": refErr.SalesCount,
			"productId":  refErr.ProductID,
		})
	case errors.As(err, &valErr):
		respond(w, http.StatusBadRequest, map[string]string{"error": valErr.Error()})
	case errors.Is(err, ErrNotFound):
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
