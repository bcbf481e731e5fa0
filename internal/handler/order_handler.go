package handler

import (
	"errors"
	"net/http"

	"eastern-store/internal/domain"
	"eastern-store/internal/middleware"
	"eastern-store/internal/service"

	"github.com/go-chi/chi/v5"
)

// OrderHandler exposes a customer's order history
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns the signed-in customer's orders, optionally filtered by the
// status query parameter.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, `{"error":"Not authenticated"}`, http.StatusUnauthorized)
		return
	}

	status := domain.OrderStatus(r.URL.Query().Get("status"))
	orders, err := h.orderService.Orders(r.Context(), sess.ID, status)
	if errors.Is(err, domain.ErrInvalidOrderStatus) {
		http.Error(w, `{"error":"Unknown order status"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Failed to load orders"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Get returns one of the signed-in customer's orders
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, `{"error":"Not authenticated"}`, http.StatusUnauthorized)
		return
	}

	order, err := h.orderService.Order(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrOrderNotFound) {
		http.Error(w, `{"error":"Order not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Failed to load order"}`, http.StatusInternalServerError)
		return
	}

	// Orders belonging to someone else look like they don't exist.
	if order.UserID != "" && order.UserID != sess.ID {
		http.Error(w, `{"error":"Order not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Summary returns per-status order counts for the account overview
func (h *OrderHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, `{"error":"Not authenticated"}`, http.StatusUnauthorized)
		return
	}

	summary, err := h.orderService.Summary(r.Context(), sess.ID)
	if err != nil {
		http.Error(w, `{"error":"Failed to load orders"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
