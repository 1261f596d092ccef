package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/woliveira1728/os-system-frontend/internal/config"
	"github.com/woliveira1728/os-system-frontend/internal/stubapi"
)

// Stub OS backend for local development. It speaks the same REST contract
// the client consumes and seeds one account: admin@example.com / admin123.
func main() {
	cfg := config.Load()

	store := stubapi.NewStore()
	store.Seed()

	router := stubapi.NewRouter(store)
	log.Printf("[stub][server] listening port=%s seed=admin@example.com/admin123", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[stub][server] %v", err)
	}
}
