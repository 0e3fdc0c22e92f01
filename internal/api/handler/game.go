package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Picorims/game-hub/internal/api/middleware"
	"github.com/Picorims/game-hub/internal/api/request"
	"github.com/Picorims/game-hub/internal/api/response"
	"github.com/Picorims/game-hub/internal/catalog"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/bot"
	"github.com/Picorims/game-hub/internal/services/ownership"
	"github.com/Picorims/game-hub/internal/services/summary"
)

// GameHandler handles catalog game and ownership endpoints
type GameHandler struct {
	catalog   catalog.Catalog
	ownership *ownership.Service
	bots      *bot.Service
	summary   *summary.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	cat catalog.Catalog,
	ownership *ownership.Service,
	bots *bot.Service,
	summary *summary.Service,
) *GameHandler {
	return &GameHandler{
		catalog:   cat,
		ownership: ownership,
		bots:      bots,
		summary:   summary,
	}
}

// List handles GET /api/v1/games?platform=
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	platform := r.URL.Query().Get("platform")

	names, err := h.catalog.ListGameNames(r.Context(), model.PlatformName(platform))
	if err != nil {
		WriteError(w, err)
		return
	}

	games := make([]string, len(names))
	for i, n := range names {
		games[i] = string(n)
	}
	response.JSON(w, http.StatusOK, response.GameNames{Platform: platform, Games: games})
}

// Get handles GET /api/v1/games/{name}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeGame(w, r, http.StatusOK, gameVar(r))
}

// Summary handles GET /api/v1/games/{name}/summary
func (h *GameHandler) Summary(w http.ResponseWriter, r *http.Request) {
	text, err := h.summary.Game(r.Context(), gameVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Summary{Text: text})
}

// Acquire handles POST /api/v1/games/{name}/owners. The acting player buys the game.
func (h *GameHandler) Acquire(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())
	game := gameVar(r)

	if err := h.ownership.AcquireGame(r.Context(), acting.Username, game); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, http.StatusCreated, game)
}

// RemoveOwner handles DELETE /api/v1/games/{name}/owners/{username}
func (h *GameHandler) RemoveOwner(w http.ResponseWriter, r *http.Request) {
	username := usernameVar(r)
	if err := actAs(middleware.MustGetPlayer(r.Context()), username); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.ownership.RemovePlayer(r.Context(), gameVar(r), username); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Offer handles POST /api/v1/games/{name}/gifts. The acting player is the gifter.
func (h *GameHandler) Offer(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())
	game := gameVar(r)

	var req request.OfferGameRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.To == "" {
		WriteError(w, NewInvalidRequestError("to is required"))
		return
	}

	if err := h.ownership.OfferGame(r.Context(), game, acting.Username, model.Username(req.To)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, http.StatusCreated, game)
}

// RecordResult handles POST /api/v1/games/{name}/results. Only one of the two
// players (or the administrator) may report a match.
func (h *GameHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())

	var req request.RecordResultRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	winner, loser := model.Username(req.Winner), model.Username(req.Loser)
	if acting.Username != winner && acting.Username != loser {
		if err := actAs(acting, model.AdminUsername); err != nil {
			WriteError(w, err)
			return
		}
	}

	result, err := h.ownership.RecordResult(r.Context(), gameVar(r), winner, loser)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ResultFromModel(*result))
}

// Results handles GET /api/v1/games/{name}/results
func (h *GameHandler) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.ownership.Results(r.Context(), gameVar(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Result, len(results))
	for i, res := range results {
		resp[i] = response.ResultFromModel(res)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Ratio handles GET /api/v1/games/{name}/ratio/{username}
func (h *GameHandler) Ratio(w http.ResponseWriter, r *http.Request) {
	game, username := gameVar(r), usernameVar(r)

	ratio, err := h.ownership.WinRatio(r.Context(), game, username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ratio{Game: string(game), Player: string(username), Ratio: ratio})
}

// AssignBot handles PUT /api/v1/games/{name}/bot (administrator only)
func (h *GameHandler) AssignBot(w http.ResponseWriter, r *http.Request) {
	if err := actAs(middleware.MustGetPlayer(r.Context()), model.AdminUsername); err != nil {
		WriteError(w, err)
		return
	}
	game := gameVar(r)

	var req request.AssignBotRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Bot == "" {
		WriteError(w, NewInvalidRequestError("bot is required"))
		return
	}

	if err := h.ownership.AssignBot(r.Context(), game, model.Username(req.Bot)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, http.StatusOK, game)
}

// Challenge handles POST /api/v1/games/{name}/challenges. The acting player
// plays one match against the game's bot.
func (h *GameHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	acting := middleware.MustGetPlayer(r.Context())

	outcome, err := h.bots.Challenge(r.Context(), gameVar(r), acting.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, outcome)
}

func (h *GameHandler) writeGame(w http.ResponseWriter, r *http.Request, status int, name model.GameName) {
	game, err := h.catalog.GetGame(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}
	ledger, err := h.ownership.Ledger(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, status, response.GameFromModel(game, ledger))
}

func gameVar(r *http.Request) model.GameName {
	return model.GameName(mux.Vars(r)["name"])
}
