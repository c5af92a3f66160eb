// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/makeurownmenu/aggregate"
	"github.com/danielhkuo/makeurownmenu/cliparse"
	"github.com/danielhkuo/makeurownmenu/middleware"
	"github.com/danielhkuo/makeurownmenu/store"
)

type StatsHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewStatsHandler(st store.Store, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{store: st, cfg: cfg}
}

// GetStats handles GET /stats
// Stats are recomputed from the stored submissions on every request
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	subs, err := h.store.List(r.Context(), email)
	if err != nil {
		middleware.ServerError(w, r, "failed to load submissions for stats", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, aggregate.Compute(subs))
}
