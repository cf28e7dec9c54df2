package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/georgemunganga/stocktrack-backend/internal/database"
	"github.com/georgemunganga/stocktrack-backend/internal/modules/product"
	"github.com/georgemunganga/stocktrack-backend/internal/modules/restock"
	"github.com/georgemunganga/stocktrack-backend/internal/modules/sale"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": database.ErrUnavailable.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// ── Product Ledger ──────────────────────────────────────
	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(router)

	// ── Sale Ledger ─────────────────────────────────────────
	saleRepo := sale.NewPostgresRepository(db)
	saleService := sale.NewService(saleRepo)
	sale.NewHandler(saleService).RegisterRoutes(router)

	// ── Restock Workflow ────────────────────────────────────
	restockRepo := restock.NewPostgresRepository(db)
	restockService := restock.NewService(restockRepo)
	restock.NewHandler(restockService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Stocktrack API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
