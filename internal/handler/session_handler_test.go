package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eastern-store/internal/session"
	"eastern-store/internal/testutil"
)

func newTestSessionHandler() (*SessionHandler, *session.Store, *testutil.MockVault) {
	vault := &testutil.MockVault{}
	store := session.NewStore(vault, session.WithDelay(0))
	store.Restore(context.Background())
	return NewSessionHandler(store), store, vault
}

func TestSessionHandler_Login_Success(t *testing.T) {
	handler, _, _ := newTestSessionHandler()

	reqBody := `{"email":"a@x.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d, body: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp SessionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success to be true")
	}
	if resp.User == nil || resp.User.Email != "a@x.com" {
		t.Errorf("expected user with email 'a@x.com', got %+v", resp.User)
	}
}

func TestSessionHandler_Login_EmptyPassword(t *testing.T) {
	handler, store, _ := newTestSessionHandler()

	reqBody := `{"email":"a@x.com","password":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if _, ok := store.Current(); ok {
		t.Error("failed login must not create a session")
	}
}

func TestSessionHandler_Login_InvalidBody(t *testing.T) {
	handler, _, _ := newTestSessionHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSessionHandler_Register_Success(t *testing.T) {
	handler, store, _ := newTestSessionHandler()

	reqBody := `{"firstName":"Ahmed","lastName":"Ali","email":"a@x.com","phone":"123","address":"","city":"","country":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/register", strings.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d, body: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var resp SessionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User == nil || resp.User.ID == "" {
		t.Error("expected registered user with a generated ID")
	}
	if current, ok := store.Current(); !ok || current.Email != "a@x.com" {
		t.Errorf("expected active session for 'a@x.com', got %+v", current)
	}
}

func TestSessionHandler_Logout_Idempotent(t *testing.T) {
	handler, store, vault := newTestSessionHandler()
	store.Login(context.Background(), "a@x.com", "secret")

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", nil)
		w := httptest.NewRecorder()

		handler.Logout(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("logout %d: expected status %d, got %d", i, http.StatusOK, w.Code)
		}
	}

	if _, ok := store.Current(); ok {
		t.Error("expected no session after logout")
	}
	if _, set := vault.Value(); set {
		t.Error("expected the durable slot to be cleared")
	}
}

func TestSessionHandler_UpdateProfile(t *testing.T) {
	handler, store, _ := newTestSessionHandler()
	store.Login(context.Background(), "a@x.com", "secret")

	reqBody := `{"city":"Jeddah"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/session/profile", strings.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.UpdateProfile(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if current, _ := store.Current(); current.City != "Jeddah" {
		t.Errorf("expected city 'Jeddah', got '%s'", current.City)
	}
}

func TestSessionHandler_UpdateProfile_NoSession(t *testing.T) {
	handler, store, _ := newTestSessionHandler()

	reqBody := `{"city":"Jeddah"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/session/profile", strings.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.UpdateProfile(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if _, ok := store.Current(); ok {
		t.Error("profile update must not create a session")
	}
}

func TestSessionHandler_Current(t *testing.T) {
	handler, store, _ := newTestSessionHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	w := httptest.NewRecorder()
	handler.Current(w, req)

	var resp SessionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success || resp.User != nil {
		t.Errorf("expected unauthenticated state, got %+v", resp)
	}

	store.Login(context.Background(), "a@x.com", "secret")

	w = httptest.NewRecorder()
	handler.Current(w, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.User == nil {
		t.Errorf("expected authenticated state, got %+v", resp)
	}
}
