package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Picorims/game-hub/internal/api/apierr"
	"github.com/Picorims/game-hub/internal/model"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// decode reads a JSON request body into v
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return NewInvalidRequestError("invalid request body")
	}
	return nil
}

// actAs checks that the acting player may act on behalf of username.
// The administrator may act for anyone.
func actAs(acting *model.Player, username model.Username) error {
	if acting.Username == username || acting.Kind == model.KindAdministrator {
		return nil
	}
	return apierr.NewForbiddenError("cannot act on behalf of " + string(username))
}
