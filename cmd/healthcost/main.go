package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lesotho-gov/healthcost/internal/prediction"
	"github.com/lesotho-gov/healthcost/internal/shared/auth"
	"github.com/lesotho-gov/healthcost/internal/shared/config"
	"github.com/lesotho-gov/healthcost/internal/shared/metrics"
	secmiddleware "github.com/lesotho-gov/healthcost/internal/shared/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	schema, err := prediction.SchemaFor(cfg.Predictor.Variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve prediction variant: %v\n", err)
		os.Exit(1)
	}

	client := prediction.NewClient(prediction.ClientConfig{
		BaseURL:              cfg.Predictor.BaseURL,
		Timeout:              cfg.Predictor.Timeout,
		MaxRequestsPerSecond: cfg.Predictor.MaxRequestsPerSecond,
	}, schema)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(secmiddleware.SecurityHeaders)
	r.Use(secmiddleware.BodyLimit)
	r.Use(metrics.Middleware)
	r.Use(corsMiddleware)

	// Health checks (unauthenticated)
	r.Get("/health", healthHandler)
	r.Get("/ready", readyHandler(client))
	r.Handle("/metrics", metrics.Handler())

	// API info
	r.Get("/", infoHandler(cfg))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(secmiddleware.RateLimiter(cfg.Predictor.MaxRequestsPerSecond*2, cfg.Predictor.MaxRequestsPerSecond*4))

		if cfg.Server.Env == "production" {
			r.Use(auth.Middleware(cfg.Auth))
		}

		predictionHandler := prediction.NewHandler(cfg.Predictor, client)
		r.Mount("/predictions", predictionHandler.Routes())
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		fmt.Println("\nShutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
		close(done)
	}()

	fmt.Println("============================================")
	fmt.Println("Healthcare Cost Prediction Gateway")
	fmt.Println("============================================")
	fmt.Printf("Environment:  %s\n", cfg.Server.Env)
	fmt.Printf("Server:       http://localhost:%d\n", cfg.Server.Port)
	fmt.Printf("API:          http://localhost:%d/api/v1/predictions\n", cfg.Server.Port)
	fmt.Printf("Upstream:     %s\n", cfg.Predictor.BaseURL)
	fmt.Printf("Variant:      %s\n", cfg.Predictor.Variant)
	fmt.Printf("Currency:     %s\n", cfg.Predictor.CurrencyPrefix)
	fmt.Println("============================================")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}

	<-done
	fmt.Println("Server stopped")
}

func infoHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"name":    "Healthcare Cost Prediction Gateway",
			"version": "0.1.0",
			"variant": cfg.Predictor.Variant,
			"docs":    "/api/v1/predictions",
		})
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	})
}

func readyHandler(client *prediction.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"server": "ready",
		}

		// Check the upstream prediction service
		if err := client.Health(r.Context()); err != nil {
			checks["upstream"] = "not ready: " + err.Error()
		} else {
			checks["upstream"] = "ready"
		}

		allReady := true
		for _, status := range checks {
			if status != "ready" {
				allReady = false
				break
			}
		}

		status := http.StatusOK
		if !allReady {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"status": map[bool]string{true: "ready", false: "not ready"}[allReady],
			"checks": checks,
		})
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID, X-Form-Session")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
