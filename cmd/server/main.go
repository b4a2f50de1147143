package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/pepocho/presupuesto-mix/internal/ai"
	"github.com/pepocho/presupuesto-mix/internal/config"
	"github.com/pepocho/presupuesto-mix/internal/handlers"
	"github.com/pepocho/presupuesto-mix/internal/middleware"
	"github.com/pepocho/presupuesto-mix/internal/notify"
	"github.com/pepocho/presupuesto-mix/internal/repository"
	"github.com/pepocho/presupuesto-mix/internal/service"
	"github.com/pepocho/presupuesto-mix/pkg/logger"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting event budget api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	if cfg.AI.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set; optimization will fall back to seed market data")
	}

	// AI client
	aiClient := ai.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)

	// Stores
	missingStore := repository.NewMissingItemStore(cfg.Store.MissingItemsFile)
	fundStore := repository.NewFundStore(cfg.Store.FundsFile)
	notifier := notify.NewWebhookNotifier(cfg.Notify.WebhookURL, log)

	// Services
	budgetService := service.NewBudgetService(repository.SeedDishes(), repository.HistoricPrices(), aiClient, log)
	participantService := service.NewParticipantService(repository.SeedParticipants())
	missingService := service.NewMissingItemService(missingStore, notifier, aiClient, cfg.Notify.WhatsAppPhone, log)
	fundService := service.NewFundService(fundStore)

	// Handlers
	healthHandler := handlers.NewHealthHandler(log)
	budgetHandler := handlers.NewBudgetHandler(budgetService, participantService, log)
	participantHandler := handlers.NewParticipantHandler(participantService, budgetService, log)
	missingHandler := handlers.NewMissingItemHandler(missingService, log)
	fundHandler := handlers.NewFundHandler(fundService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Budget endpoints
		r.Get("/budget", budgetHandler.GetBudget)
		r.Put("/budget/dish/{dishId}/ingredient/{ingredientId}", budgetHandler.UpdateIngredient)
		r.Post("/budget/optimize", budgetHandler.ToggleOptimization)
		r.Post("/budget/regenerate", budgetHandler.Regenerate)
		r.Get("/budget/opportunities", budgetHandler.Opportunities)

		// Participant endpoints
		r.Get("/participants", participantHandler.List)
		r.Get("/participants/split", participantHandler.Split)
		r.Put("/participants/{id}/active", participantHandler.SetActive)
		r.Put("/participants/{id}/paid", participantHandler.SetPaid)

		// Missing item endpoints
		r.Get("/missing-items", missingHandler.List)
		r.Post("/missing-items", missingHandler.Add)
		r.Delete("/missing-items", missingHandler.Clear)
		r.Get("/missing-items/whatsapp", missingHandler.WhatsAppLink)
		r.Post("/voice-order", missingHandler.VoiceOrder)

		// Fund endpoints
		r.Get("/funds", fundHandler.List)
		r.Post("/funds/{fundId}/contribute", fundHandler.Contribute)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
