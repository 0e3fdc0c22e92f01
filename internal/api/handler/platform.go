package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Picorims/game-hub/internal/api/response"
	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/registry"
)

// PlatformHandler handles platform endpoints
type PlatformHandler struct {
	catalog  catalog.Catalog
	registry *registry.Service
}

// NewPlatformHandler creates a new platform handler
func NewPlatformHandler(cat catalog.Catalog, registry *registry.Service) *PlatformHandler {
	return &PlatformHandler{
		catalog:  cat,
		registry: registry,
	}
}

// List handles GET /api/v1/platforms
func (h *PlatformHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.catalog.ListPlatformNames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	platforms := make([]string, len(names))
	for i, n := range names {
		platforms[i] = string(n)
	}
	response.JSON(w, http.StatusOK, response.PlatformNames{Platforms: platforms})
}

// Get handles GET /api/v1/platforms/{name}
func (h *PlatformHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := model.PlatformName(mux.Vars(r)["name"])

	platform, err := h.catalog.GetPlatform(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}
	roster, err := h.registry.Roster(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.Platform{
		Name:    string(platform.Name),
		Games:   make([]string, len(platform.Games)),
		Players: make([]string, len(roster)),
	}
	for i, g := range platform.Games {
		resp.Games[i] = string(g)
	}
	for i, p := range roster {
		resp.Players[i] = string(p)
	}
	response.JSON(w, http.StatusOK, resp)
}
