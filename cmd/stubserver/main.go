package main

import (
	"log"
	"net/http"
	"os"

	"portalsync/internal/auth"
	"portalsync/internal/devserver"
)

// stubserver runs the local development implementation of the dashboard
// API, the default target of the client's hardcoded API root fallback.
func main() {
	addr := getEnv("STUB_ADDR", ":8080")
	secret := os.Getenv("STUB_JWT_SECRET")

	cfg := devserver.Config{JWTSecret: secret}
	if secret != "" {
		email := getEnv("STUB_ADMIN_EMAIL", "admin@example.com")
		password := getEnv("STUB_ADMIN_PASSWORD", "admin")
		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Fatalf("hash admin password failed: %v", err)
		}
		cfg.Users = map[string]string{email: hash}
	}

	server := devserver.New(cfg)
	seed(server)

	log.Printf("stub API listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func seed(server *devserver.Server) {
	server.Seed("Staff", []map[string]any{
		{"id": "st-1", "firstName": "Amina", "lastName": "Diallo", "email": "amina@example.com", "department": "Finance", "position": "Accountant", "location": "HQ"},
		{"id": "st-2", "firstName": "Jonas", "lastName": "Berg", "email": "jonas@example.com", "department": "Engineering", "position": "Developer", "location": "Remote"},
	})
	server.Seed("LeaveRequest", []map[string]any{
		{"id": "lr-1", "staffId": "st-1", "type": "Annual", "reason": "Family trip", "status": "Pending"},
	})
	server.Seed("Product", []map[string]any{
		{"id": "pr-1", "sku": "SKU-100", "name": "Desk Lamp", "category": "Office", "price": 24.5, "stock": 140, "warehouse": "A"},
	})
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
