package golondon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

var server *http.Server

// NewRouter builds the HTTP API router for the app.
func NewRouter(app *App, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/api/health", handleHealth)
	r.Get("/api/search", app.handleSearch)
	r.Get("/api/stoppoints", app.handleStopPoints)
	r.Get("/api/stoppoints/{id}/arrivals", app.handleArrivals)
	r.Get("/api/nearby", app.handleNearby)
	r.Get("/api/lines/status", app.handleLineStatus)
	r.Get("/api/lines/overview", app.handleOverview)
	r.Get("/api/prefs/home-modes", app.handleGetHomeModes)
	r.Put("/api/prefs/home-modes", app.handlePutHomeModes)
	r.Get("/api/prefs/line-map", app.handleGetLineMapFilters)
	r.Put("/api/prefs/line-map", app.handlePutLineMapFilters)

	return r
}

// StartServer starts the HTTP server in the background.
func StartServer(app *App, port int, allowedOrigins []string) {
	addr := fmt.Sprintf(":%d", port)
	server = &http.Server{
		Addr:              addr,
		Handler:           NewRouter(app, allowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and drains the server.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
