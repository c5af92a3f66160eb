// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/makeurownmenu/cliparse"
	"github.com/danielhkuo/makeurownmenu/middleware"
	"github.com/danielhkuo/makeurownmenu/models"
	"github.com/danielhkuo/makeurownmenu/store"
)

// MissingFieldsMessage is returned when a submission lacks user or menuFeedback
const MissingFieldsMessage = "Missing user or menuFeedback in request body"

type SubmissionHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewSubmissionHandler(st store.Store, cfg cliparse.Config) *SubmissionHandler {
	return &SubmissionHandler{store: st, cfg: cfg}
}

// Submit handles POST /submit and POST /api/submit
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Contents are trusted; the form validates before sending
	if req.User == nil || req.MenuFeedback == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MissingFieldsMessage)
		return
	}

	id, err := h.store.Create(r.Context(), *req.User, req.MenuFeedback)
	if err != nil {
		middleware.ServerError(w, r, "failed to insert submission", err)
		return
	}

	slog.Info("submission created",
		"id", id,
		"email", req.User.Email,
		"request_id", middleware.RequestID(r.Context()),
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		Success:    true,
		InsertedID: id,
	})
}

// ListSubmissions handles GET /submissions and GET /api/submissions
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	subs, err := h.store.List(r.Context(), email)
	if err != nil {
		middleware.ServerError(w, r, "failed to list submissions", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, subs)
}
