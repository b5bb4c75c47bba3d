// cmd/server/main.go
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"hrms_backend/internal/config"
	"hrms_backend/internal/routes"
	"hrms_backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var store storage.Store
	if cfg.DatabaseURL != "" {
		db, err := storage.OpenDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to connect database: ", err)
		}
		gs := storage.NewGormStore(db)
		if err := gs.Init(context.Background()); err != nil {
			log.Fatal("failed to initialize database: ", err)
		}
		store = gs
	} else {
		ms, err := storage.NewSeededMemoryStore()
		if err != nil {
			log.Fatal("failed to seed store: ", err)
		}
		store = ms
		log.Println("DATABASE_URL not set, using in-memory store")
	}

	r := routes.NewRouter(store)

	addr := ":" + cfg.Port
	log.Printf("Server running on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
