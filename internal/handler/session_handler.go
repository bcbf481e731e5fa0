package handler

import (
	"encoding/json"
	"net/http"

	"eastern-store/internal/domain"
	"eastern-store/internal/session"
)

// SessionHandler exposes the session store over HTTP
type SessionHandler struct {
	store *session.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse represents the session state returned to clients
type SessionResponse struct {
	Success bool            `json:"success"`
	Loading bool            `json:"loading"`
	User    *domain.Session `json:"user"`
}

// Login handles customer login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !h.store.Login(r.Context(), req.Email, req.Password) {
		http.Error(w, `{"error":"Invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	h.writeSession(w, http.StatusOK)
}

// Register handles customer registration
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !h.store.Register(r.Context(), profile) {
		http.Error(w, `{"error":"Registration failed"}`, http.StatusServiceUnavailable)
		return
	}

	h.writeSession(w, http.StatusCreated)
}

// Logout ends the active session. Logging out without one is fine.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// UpdateProfile merges partial profile fields into the active session
func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	h.store.UpdateProfile(r.Context(), update)

	if _, ok := h.store.Current(); !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeSession(w, http.StatusOK)
}

// Current reports the session state, including the initializing flag
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	h.writeSession(w, http.StatusOK)
}

func (h *SessionHandler) writeSession(w http.ResponseWriter, status int) {
	resp := SessionResponse{Loading: h.store.Loading()}
	if current, ok := h.store.Current(); ok {
		resp.Success = true
		resp.User = &current
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
