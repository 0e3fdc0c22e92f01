package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Picorims/game-hub/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeInternalError  = "INTERNAL_ERROR"

	// Registry
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeUsernameExists    = "USERNAME_EXISTS"
	CodeUsernameReserved  = "USERNAME_RESERVED"
	CodeInvalidUsername   = "INVALID_USERNAME"
	CodeInvalidPlayer     = "INVALID_PLAYER"
	CodeIllegalProfile    = "ILLEGAL_PROFILE"
	CodeCannotDeleteAdmin = "CANNOT_DELETE_ADMIN"

	// Friendships
	CodeIneligibleFriendship = "INELIGIBLE_FRIENDSHIP"
	CodeAlreadyFriends       = "ALREADY_FRIENDS"
	CodeNotFriends           = "NOT_FRIENDS"
	CodeFriendLimitExceeded  = "FRIEND_LIMIT_EXCEEDED"

	// Tutoring
	CodeNotAChild            = "NOT_A_CHILD"
	CodeInvalidTutor         = "INVALID_TUTOR"
	CodeAlreadyTutor         = "ALREADY_TUTOR"
	CodeTutorLimitExceeded   = "TUTOR_LIMIT_EXCEEDED"
	CodeMinimumTutorsReached = "MINIMUM_TUTORS_REACHED"
	CodeNotATutor            = "NOT_A_TUTOR"

	// Ownership
	CodeLimitReached        = "LIMIT_REACHED"
	CodeUnsupportedPlatform = "UNSUPPORTED_PLATFORM"
	CodeAlreadyOwned        = "ALREADY_OWNED"
	CodeCannotAcquire       = "CANNOT_ACQUIRE"
	CodeIneligibleGifter    = "INELIGIBLE_GIFTER"
	CodeInvalidResult       = "INVALID_RESULT"

	// Bots
	CodeNotABot            = "NOT_A_BOT"
	CodeUnknownBotStrategy = "UNKNOWN_BOT_STRATEGY"
	CodeNoBotAssigned      = "NO_BOT_ASSIGNED"

	// Catalog
	CodeGameNotFound     = "GAME_NOT_FOUND"
	CodePlatformNotFound = "PLATFORM_NOT_FOUND"
	CodeCatalogEmpty     = "CATALOG_EMPTY"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// mapping ties a model sentinel to its HTTP representation.
// Wrapped sentinels must be listed before the sentinel they wrap.
type mapping struct {
	target error
	status int
	code   string
}

var mappings = []mapping{
	{model.ErrPlayerNotFound, http.StatusNotFound, CodePlayerNotFound},
	{model.ErrDuplicateUsername, http.StatusConflict, CodeUsernameExists},
	{model.ErrReservedUsername, http.StatusConflict, CodeUsernameReserved},
	{model.ErrInvalidUsername, http.StatusBadRequest, CodeInvalidUsername},
	{model.ErrInvalidPlayer, http.StatusBadRequest, CodeInvalidPlayer},
	{model.ErrIllegalProfile, http.StatusUnprocessableEntity, CodeIllegalProfile},
	{model.ErrCannotDeleteAdmin, http.StatusForbidden, CodeCannotDeleteAdmin},

	{model.ErrIneligibleFriendship, http.StatusForbidden, CodeIneligibleFriendship},
	{model.ErrAlreadyFriends, http.StatusConflict, CodeAlreadyFriends},
	{model.ErrNotFriends, http.StatusConflict, CodeNotFriends},
	{model.ErrFriendLimitExceeded, http.StatusConflict, CodeFriendLimitExceeded},

	{model.ErrNotAChild, http.StatusUnprocessableEntity, CodeNotAChild},
	{model.ErrInvalidTutor, http.StatusUnprocessableEntity, CodeInvalidTutor},
	{model.ErrAlreadyTutor, http.StatusConflict, CodeAlreadyTutor},
	{model.ErrTutorLimitExceeded, http.StatusConflict, CodeTutorLimitExceeded},
	{model.ErrMinimumTutorsReached, http.StatusConflict, CodeMinimumTutorsReached},
	{model.ErrNotATutor, http.StatusConflict, CodeNotATutor},

	{model.ErrLimitReached, http.StatusConflict, CodeLimitReached},
	{model.ErrUnsupportedPlatform, http.StatusUnprocessableEntity, CodeUnsupportedPlatform},
	{model.ErrAlreadyOwned, http.StatusConflict, CodeAlreadyOwned},
	{model.ErrAcquiring, http.StatusConflict, CodeCannotAcquire},
	{model.ErrIneligibleGifter, http.StatusForbidden, CodeIneligibleGifter},
	{model.ErrInvalidResult, http.StatusBadRequest, CodeInvalidResult},

	{model.ErrNotABot, http.StatusUnprocessableEntity, CodeNotABot},
	{model.ErrUnknownBotStrategy, http.StatusBadRequest, CodeUnknownBotStrategy},
	{model.ErrNoBotAssigned, http.StatusConflict, CodeNoBotAssigned},

	{model.ErrGameNotFound, http.StatusNotFound, CodeGameNotFound},
	{model.ErrPlatformNotFound, http.StatusNotFound, CodePlatformNotFound},
	{model.ErrCatalogEmpty, http.StatusServiceUnavailable, CodeCatalogEmpty},
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error is reported with
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return &httpError{m.status, APIError{m.code, m.target.Error()}}
		}
	}

	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, message}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
