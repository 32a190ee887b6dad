package devserver

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"portalsync/internal/domain/finance"
	"portalsync/internal/domain/inventory"
	"portalsync/internal/domain/leave"
	"portalsync/internal/domain/onboarding"
	"portalsync/internal/state"
)

// Server is an in-memory implementation of the remote dashboard API,
// serving the same contract the gateway consumes. It backs cmd/stubserver
// for local development and the end-to-end tests.
type Server struct {
	Router http.Handler

	secret string
	users  map[string]string

	mu   sync.Mutex
	data map[string][]map[string]any
}

type Config struct {
	// JWTSecret enables bearer auth on all resource routes when non-empty.
	JWTSecret string
	// Users maps login email to bcrypt password hash.
	Users map[string]string
}

type workflow struct {
	initial string
	machine state.Machine
	// actions maps action endpoint name to target status.
	actions map[string]string
}

var workflows = map[string]workflow{
	"LeaveRequest": {
		initial: leave.StatusPending,
		machine: leave.Machine(),
		actions: invert(leave.Actions()),
	},
	"Onboarding": {
		initial: onboarding.StatusNotStarted,
		machine: onboarding.Machine(),
		actions: invert(onboarding.Actions()),
	},
	"Invoice": {
		initial: finance.InvoiceStatusPending,
		machine: finance.InvoiceMachine(),
		actions: invert(finance.InvoiceActions()),
	},
	"Shipment": {
		initial: inventory.ShipmentStatusPending,
		machine: inventory.ShipmentMachine(),
		actions: invert(inventory.ShipmentActions()),
	},
}

var plainResources = map[string]bool{
	"Staff":       true,
	"Attendance":  true,
	"Transaction": true,
	"Product":     true,
}

func invert(actions map[string]string) map[string]string {
	out := make(map[string]string, len(actions))
	for target, action := range actions {
		out[action] = target
	}
	return out
}

func New(cfg Config) *Server {
	s := &Server{
		secret: cfg.JWTSecret,
		users:  cfg.Users,
		data:   make(map[string][]map[string]any),
	}

	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(logger)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			if s.secret != "" {
				r.Use(s.requireAuth)
			}
			r.Get("/{resource}", s.handleList)
			r.Post("/{resource}", s.handleCreate)
			r.Put("/{resource}/{id}", s.handleUpdate)
			r.Delete("/{resource}/{id}", s.handleDelete)
			r.Post("/{resource}/{id}/{action}", s.handleAction)
		})
	})

	s.Router = router
	return s
}

func known(resource string) bool {
	if plainResources[resource] {
		return true
	}
	_, ok := workflows[resource]
	return ok
}

// Seed loads records into a resource collection, for tests and the stub
// server's sample data.
func (s *Server) Seed(resource string, records []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		copied := make(map[string]any, len(rec))
		for k, v := range rec {
			copied[k] = v
		}
		s.data[resource] = append(s.data[resource], copied)
	}
}
