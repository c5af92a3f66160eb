// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"go.uber.org/ratelimit"

	"github.com/danielhkuo/makeurownmenu/catalog"
	"github.com/danielhkuo/makeurownmenu/cliparse"
	"github.com/danielhkuo/makeurownmenu/handlers"
	"github.com/danielhkuo/makeurownmenu/middleware"
	"github.com/danielhkuo/makeurownmenu/store"
)

// Banner is the body of GET /
const Banner = "makeurownmenu API v1"

func NewRouter(st store.Store, menu *catalog.Catalog, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	submissionHandler := handlers.NewSubmissionHandler(st, cfg)
	statsHandler := handlers.NewStatsHandler(st, cfg)
	menuHandler := handlers.NewMenuHandler(menu)

	// Shared by both submit paths
	submitLimiter := ratelimit.New(cfg.SubmitRate)
	submit := middleware.WithRateLimit(submitLimiter, middleware.WithLogging(submissionHandler.Submit))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Submissions
	mux.HandleFunc("POST /submit", submit)
	mux.HandleFunc("POST /api/submit", submit)
	mux.HandleFunc("GET /submissions", middleware.WithLogging(submissionHandler.ListSubmissions))
	mux.HandleFunc("GET /api/submissions", middleware.WithLogging(submissionHandler.ListSubmissions))

	// Dashboard
	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))
	mux.HandleFunc("GET /menu", middleware.WithLogging(menuHandler.GetMenu))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return middleware.WithRequestID(middleware.Recover(middleware.CORS(mux)))
}
