package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Picorims/game-hub/internal/api/middleware"
	"github.com/Picorims/game-hub/internal/api/request"
	"github.com/Picorims/game-hub/internal/api/response"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/account"
	"github.com/Picorims/game-hub/internal/services/policy"
	"github.com/Picorims/game-hub/internal/services/registry"
	"github.com/Picorims/game-hub/internal/services/summary"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	registry *registry.Service
	accounts *account.Service
	summary  *summary.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(registry *registry.Service, accounts *account.Service, summary *summary.Service) *PlayerHandler {
	return &PlayerHandler{
		registry: registry,
		accounts: accounts,
		summary:  summary,
	}
}

// CreateAdult handles POST /api/v1/players/adults
func (h *PlayerHandler) CreateAdult(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAdultRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	birthDate, err := request.ParseBirthDate(req.BirthDate)
	if err != nil {
		WriteError(w, NewInvalidRequestError("birth_date must be formatted as "+request.DateLayout))
		return
	}

	player, err := h.accounts.CreateAdult(r.Context(),
		model.Username(req.Username),
		req.Email,
		birthDate,
		model.PlatformName(req.Platform),
		model.ProfileKind(req.Profile),
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// CreateChild handles POST /api/v1/players/children. Only the tutor named in
// the body (or the administrator) may register the child.
func (h *PlayerHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())

	var req request.CreateChildRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Tutor == "" {
		WriteError(w, NewInvalidRequestError("tutor is required"))
		return
	}
	if err := actAs(acting, model.Username(req.Tutor)); err != nil {
		WriteError(w, err)
		return
	}

	birthDate, err := request.ParseBirthDate(req.BirthDate)
	if err != nil {
		WriteError(w, NewInvalidRequestError("birth_date must be formatted as "+request.DateLayout))
		return
	}

	player, err := h.accounts.CreateChild(r.Context(),
		model.Username(req.Username),
		req.Email,
		birthDate,
		model.PlatformName(req.Platform),
		model.Username(req.Tutor),
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// CreateBot handles POST /api/v1/players/bots (administrator only)
func (h *PlayerHandler) CreateBot(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())
	if err := actAs(acting, model.AdminUsername); err != nil {
		WriteError(w, err)
		return
	}

	var req request.CreateBotRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	bot, err := h.accounts.CreateBot(r.Context(), model.Username(req.Username), req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(bot))
}

// List handles GET /api/v1/players?kind=
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	acting := middleware.GetPlayer(r.Context())
	kind := model.PlayerKind(r.URL.Query().Get("kind"))
	if kind != "" && !kind.Valid() {
		WriteError(w, NewInvalidRequestError("unknown player kind"))
		return
	}

	players, err := h.registry.List(r.Context(), kind)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Player, len(players))
	for i, p := range players {
		resp[i] = view(acting, p)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/players/{username}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	player, err := h.registry.Find(r.Context(), usernameVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, view(middleware.GetPlayer(r.Context()), player))
}

// Summary handles GET /api/v1/players/{username}/summary
func (h *PlayerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())

	text, err := h.summary.Player(r.Context(), acting.Username, usernameVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Summary{Text: text})
}

// Available handles GET /api/v1/players/available/{username}
func (h *PlayerHandler) Available(w http.ResponseWriter, r *http.Request) {
	username := usernameVar(r)

	available, err := h.registry.IsUsernameAvailable(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Availability{Username: string(username), Available: available})
}

// ChangeProfile handles PATCH /api/v1/players/{username}/profile
func (h *PlayerHandler) ChangeProfile(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())
	username := usernameVar(r)
	if err := actAs(acting, username); err != nil {
		WriteError(w, err)
		return
	}

	var req request.ChangeProfileRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Profile == "" {
		WriteError(w, NewInvalidRequestError("profile is required"))
		return
	}

	player, err := h.accounts.ChangeProfile(r.Context(), username, model.ProfileKind(req.Profile))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{username}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())
	username := usernameVar(r)
	if err := actAs(acting, username); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.accounts.DeleteAccount(r.Context(), username); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// view renders target as seen by the acting player. Anonymous callers see
// children in restricted form only.
func view(acting, target *model.Player) response.Player {
	visible := !target.IsChild()
	if acting != nil {
		visible = policy.CanView(acting, target)
	}
	if !visible {
		return response.RestrictedPlayerFromModel(target)
	}
	return response.PlayerFromModel(target)
}

func usernameVar(r *http.Request) model.Username {
	return model.Username(mux.Vars(r)["username"])
}
