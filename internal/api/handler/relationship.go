package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Picorims/game-hub/internal/api/apierr"
	"github.com/Picorims/game-hub/internal/api/middleware"
	"github.com/Picorims/game-hub/internal/api/response"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/registry"
	"github.com/Picorims/game-hub/internal/services/relationship"
)

// RelationshipHandler handles friendship and tutoring endpoints
type RelationshipHandler struct {
	registry      *registry.Service
	relationships *relationship.Service
}

// NewRelationshipHandler creates a new relationship handler
func NewRelationshipHandler(registry *registry.Service, relationships *relationship.Service) *RelationshipHandler {
	return &RelationshipHandler{
		registry:      registry,
		relationships: relationships,
	}
}

// Friends handles GET /api/v1/players/{username}/friends
func (h *RelationshipHandler) Friends(w http.ResponseWriter, r *http.Request) {
	username := usernameVar(r)
	if err := h.checkVisible(r, username); err != nil {
		WriteError(w, err)
		return
	}

	friends, err := h.relationships.Friends(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, usernames(username, friends))
}

// AddFriend handles POST /api/v1/players/{username}/friends/{friend}.
// The acting player is the requester.
func (h *RelationshipHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	username := usernameVar(r)
	if err := actAs(middleware.MustGetPlayer(r.Context()), username); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.relationships.AddFriend(r.Context(), username, friendVar(r)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeFriends(w, r, http.StatusCreated, username)
}

// RemoveFriend handles DELETE /api/v1/players/{username}/friends/{friend}
func (h *RelationshipHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	username := usernameVar(r)
	if err := actAs(middleware.MustGetPlayer(r.Context()), username); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.relationships.RemoveFriend(r.Context(), username, friendVar(r)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeFriends(w, r, http.StatusOK, username)
}

// Tutors handles GET /api/v1/players/{username}/tutors
func (h *RelationshipHandler) Tutors(w http.ResponseWriter, r *http.Request) {
	child := usernameVar(r)
	if err := h.checkVisible(r, child); err != nil {
		WriteError(w, err)
		return
	}

	tutors, err := h.relationships.Tutors(r.Context(), child)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, usernames(child, tutors))
}

// AddTutor handles POST /api/v1/players/{username}/tutors/{tutor}
func (h *RelationshipHandler) AddTutor(w http.ResponseWriter, r *http.Request) {
	child := usernameVar(r)
	if err := h.checkTutoring(r, child); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.relationships.AddTutor(r.Context(), child, tutorVar(r)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeTutors(w, r, http.StatusCreated, child)
}

// RemoveTutor handles DELETE /api/v1/players/{username}/tutors/{tutor}
func (h *RelationshipHandler) RemoveTutor(w http.ResponseWriter, r *http.Request) {
	child := usernameVar(r)
	if err := h.checkTutoring(r, child); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.relationships.RemoveTutor(r.Context(), child, tutorVar(r)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeTutors(w, r, http.StatusOK, child)
}

// Children handles GET /api/v1/players/{username}/children
func (h *RelationshipHandler) Children(w http.ResponseWriter, r *http.Request) {
	tutor := usernameVar(r)

	children, err := h.relationships.Children(r.Context(), tutor)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, usernames(tutor, children))
}

func (h *RelationshipHandler) writeFriends(w http.ResponseWriter, r *http.Request, status int, username model.Username) {
	friends, err := h.relationships.Friends(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, usernames(username, friends))
}

func (h *RelationshipHandler) writeTutors(w http.ResponseWriter, r *http.Request, status int, child model.Username) {
	tutors, err := h.relationships.Tutors(r.Context(), child)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, usernames(child, tutors))
}

// checkVisible rejects callers that may not see the relations of username
func (h *RelationshipHandler) checkVisible(r *http.Request, username model.Username) error {
	target, err := h.registry.Find(r.Context(), username)
	if err != nil {
		return err
	}
	if view(middleware.GetPlayer(r.Context()), target).Restricted {
		return apierr.NewForbiddenError("cannot view " + string(username))
	}
	return nil
}

// checkTutoring allows the child's current tutors and the administrator to
// change its tutors
func (h *RelationshipHandler) checkTutoring(r *http.Request, child model.Username) error {
	acting := middleware.MustGetPlayer(r.Context())
	if acting.Kind == model.KindAdministrator || acting.HasChild(child) {
		return nil
	}
	return apierr.NewForbiddenError("only a tutor of " + string(child) + " can change its tutors")
}

func usernames(subject model.Username, players []model.Username) response.Usernames {
	list := make([]string, len(players))
	for i, p := range players {
		list[i] = string(p)
	}
	return response.Usernames{Username: string(subject), Players: list}
}

func friendVar(r *http.Request) model.Username {
	return model.Username(mux.Vars(r)["friend"])
}

func tutorVar(r *http.Request) model.Username {
	return model.Username(mux.Vars(r)["tutor"])
}
