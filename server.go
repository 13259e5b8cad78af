package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomato-game/tomato-api/internal/db/bundb"
	"github.com/tomato-game/tomato-api/internal/observability/metrics"
)

const shutdownTimeout = 10 * time.Second

func registerRootRoutes(router chi.Router, httpMetrics *metrics.HTTPMetrics, db *bundb.DBService) {
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Hello, welcome to the Tomato API game!"})
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.GetDB().PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	router.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func shutdownServer(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
