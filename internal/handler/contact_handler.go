package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"eastern-store/internal/domain"
	"eastern-store/internal/service"
)

// ContactHandler accepts contact-form submissions
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact-form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a contact message
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	err := h.contactService.Submit(r.Context(), msg)
	if errors.Is(err, domain.ErrInvalidContactMessage) {
		http.Error(w, `{"error":"Name, email and message are required"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Failed to store message"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      msg.ID,
	})
}
