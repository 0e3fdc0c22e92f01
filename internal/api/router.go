package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Picorims/game-hub/internal/api/handler"
	"github.com/Picorims/game-hub/internal/api/middleware"
	"github.com/Picorims/game-hub/internal/catalog"
	sharedmw "github.com/Picorims/game-hub/internal/middleware"
	"github.com/Picorims/game-hub/internal/services/account"
	"github.com/Picorims/game-hub/internal/services/bot"
	"github.com/Picorims/game-hub/internal/services/ownership"
	"github.com/Picorims/game-hub/internal/services/registry"
	"github.com/Picorims/game-hub/internal/services/relationship"
	"github.com/Picorims/game-hub/internal/services/summary"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	Catalog             catalog.Catalog
	RegistryService     *registry.Service
	RelationshipService *relationship.Service
	OwnershipService    *ownership.Service
	AccountService      *account.Service
	BotService          *bot.Service
	SummaryService      *summary.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.RegistryService, cfg.AccountService, cfg.SummaryService)
	relationshipHandler := handler.NewRelationshipHandler(cfg.RegistryService, cfg.RelationshipService)
	gameHandler := handler.NewGameHandler(cfg.Catalog, cfg.OwnershipService, cfg.BotService, cfg.SummaryService)
	platformHandler := handler.NewPlatformHandler(cfg.Catalog, cfg.RegistryService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(sharedmw.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger))
	api.Use(middleware.ActingPlayer(cfg.RegistryService))

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Public player routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/adults", playerHandler.CreateAdult).Methods(http.MethodPost)
	api.HandleFunc("/players/available/{username}", playerHandler.Available).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/friends", relationshipHandler.Friends).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/tutors", relationshipHandler.Tutors).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/children", relationshipHandler.Children).Methods(http.MethodGet)

	// Player routes acting on behalf of the X-Player header
	players := api.PathPrefix("/players").Subrouter()
	players.Use(middleware.RequirePlayer)
	players.HandleFunc("/children", playerHandler.CreateChild).Methods(http.MethodPost)
	players.HandleFunc("/bots", playerHandler.CreateBot).Methods(http.MethodPost)
	players.HandleFunc("/{username}", playerHandler.Delete).Methods(http.MethodDelete)
	players.HandleFunc("/{username}/summary", playerHandler.Summary).Methods(http.MethodGet)
	players.HandleFunc("/{username}/profile", playerHandler.ChangeProfile).Methods(http.MethodPatch)
	players.HandleFunc("/{username}/friends/{friend}", relationshipHandler.AddFriend).Methods(http.MethodPost)
	players.HandleFunc("/{username}/friends/{friend}", relationshipHandler.RemoveFriend).Methods(http.MethodDelete)
	players.HandleFunc("/{username}/tutors/{tutor}", relationshipHandler.AddTutor).Methods(http.MethodPost)
	players.HandleFunc("/{username}/tutors/{tutor}", relationshipHandler.RemoveTutor).Methods(http.MethodDelete)

	// Public game routes
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{name}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{name}/summary", gameHandler.Summary).Methods(http.MethodGet)
	api.HandleFunc("/games/{name}/results", gameHandler.Results).Methods(http.MethodGet)
	api.HandleFunc("/games/{name}/ratio/{username}", gameHandler.Ratio).Methods(http.MethodGet)

	// Game routes acting on behalf of the X-Player header
	games := api.PathPrefix("/games").Subrouter()
	games.Use(middleware.RequirePlayer)
	games.HandleFunc("/{name}/owners", gameHandler.Acquire).Methods(http.MethodPost)
	games.HandleFunc("/{name}/owners/{username}", gameHandler.RemoveOwner).Methods(http.MethodDelete)
	games.HandleFunc("/{name}/gifts", gameHandler.Offer).Methods(http.MethodPost)
	games.HandleFunc("/{name}/results", gameHandler.RecordResult).Methods(http.MethodPost)
	games.HandleFunc("/{name}/bot", gameHandler.AssignBot).Methods(http.MethodPut)
	games.HandleFunc("/{name}/challenges", gameHandler.Challenge).Methods(http.MethodPost)

	// Platform routes
	api.HandleFunc("/platforms", platformHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/platforms/{name}", platformHandler.Get).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
