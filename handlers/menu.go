// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/makeurownmenu/catalog"
	"github.com/danielhkuo/makeurownmenu/middleware"
)

// MenuResponse is the catalog plus its display order
type MenuResponse struct {
	Days  []string                     `json:"days"`
	Meals []string                     `json:"meals"`
	Menu  map[string]map[string]string `json:"menu"`
}

type MenuHandler struct {
	catalog *catalog.Catalog
}

func NewMenuHandler(c *catalog.Catalog) *MenuHandler {
	return &MenuHandler{catalog: c}
}

// GetMenu handles GET /menu
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, MenuResponse{
		Days:  catalog.Days,
		Meals: catalog.Meals,
		Menu:  h.catalog.Menu,
	})
}
