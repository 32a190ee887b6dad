package devserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"portalsync/internal/auth"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func fail(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Code: code, Message: message})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	hash, ok := s.users[payload.Email]
	if !ok || auth.CheckPassword(hash, payload.Password) != nil {
		fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		return
	}
	token, err := auth.GenerateToken(s.secret, auth.Claims{Email: payload.Email, Role: "admin"}, 24*time.Hour)
	if err != nil {
		fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			fail(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		if _, err := auth.ParseToken(s.secret, token); err != nil {
			fail(w, http.StatusUnauthorized, "unauthorized", "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	if !known(resource) {
		fail(w, http.StatusNotFound, "unknown_resource", "unknown resource "+resource)
		return
	}

	s.mu.Lock()
	records := make([]map[string]any, len(s.data[resource]))
	copy(records, s.data[resource])
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	if !known(resource) {
		fail(w, http.StatusNotFound, "unknown_resource", "unknown resource "+resource)
		return
	}

	var record map[string]any
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil || record == nil {
		fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}

	record["id"] = uuid.NewString()
	record["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	if wf, ok := workflows[resource]; ok {
		record["status"] = wf.initial
	}

	s.mu.Lock()
	s.data[resource] = append(s.data[resource], record)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")
	if !known(resource) {
		fail(w, http.StatusNotFound, "unknown_resource", "unknown resource "+resource)
		return
	}

	var record map[string]any
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil || record == nil {
		fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload")
		return
	}
	record["id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data[resource] {
		if existing["id"] == id {
			s.data[resource][i] = record
			writeJSON(w, http.StatusOK, record)
			return
		}
	}
	fail(w, http.StatusNotFound, "not_found", "record not found")
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")
	if !known(resource) {
		fail(w, http.StatusNotFound, "unknown_resource", "unknown resource "+resource)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.data[resource]
	for i, existing := range records {
		if existing["id"] == id {
			s.data[resource] = append(records[:i:i], records[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id := chi.URLParam(r, "id")
	action := chi.URLParam(r, "action")

	wf, ok := workflows[resource]
	if !ok {
		fail(w, http.StatusNotFound, "unknown_resource", "no workflow for resource "+resource)
		return
	}
	target, ok := wf.actions[action]
	if !ok {
		fail(w, http.StatusNotFound, "unknown_action", "unknown action "+action)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data[resource] {
		if existing["id"] != id {
			continue
		}
		current, _ := existing["status"].(string)
		if !wf.machine.Allowed(current, target) {
			fail(w, http.StatusConflict, "invalid_transition", "cannot move from "+current+" to "+target)
			return
		}
		existing["status"] = target
		s.data[resource][i] = existing
		writeJSON(w, http.StatusOK, existing)
		return
	}
	fail(w, http.StatusNotFound, "not_found", "record not found")
}
