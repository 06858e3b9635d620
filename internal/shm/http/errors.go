package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/shm/internal/shm/invite"
	"github.com/aussiebroadwan/shm/internal/shm/service"
	"github.com/aussiebroadwan/shm/internal/shm/store"
	"github.com/aussiebroadwan/shm/pkg/httpx"
	"github.com/aussiebroadwan/shm/pkg/idx"
	"github.com/aussiebroadwan/shm/pkg/shmsdk"
	"github.com/aussiebroadwan/shm/pkg/slogx"
)

// writeError maps a service error onto an API error response. Unexpected
// failures are logged; client errors are not.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var parseErr *invite.ParseError

	switch {
	case errors.Is(err, invite.ErrTooLarge), errors.Is(err, httpx.ErrBodyTooLarge):
		shmsdk.NewAPIError(http.StatusRequestEntityTooLarge, shmsdk.ErrorCodeInviteTooLarge, "invite is too large").WriteError(w)
	case errors.As(err, &parseErr):
		shmsdk.NewAPIError(http.StatusUnprocessableEntity, shmsdk.ErrorCodeInvalidInvite, parseErr.Reason).WriteError(w)
	case errors.Is(err, service.ErrInvalidStakeholder), errors.Is(err, service.ErrInvalidMeeting):
		shmsdk.NewAPIError(http.StatusBadRequest, shmsdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		shmsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, store.ErrIntegrity):
		shmsdk.ErrIntegrityViolation.WriteError(w)
	case errors.Is(err, store.ErrStorage):
		slogx.FromContext(r.Context()).Error(msg, "error", err)
		shmsdk.ErrStorage.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error(msg, "error", err)
		shmsdk.ErrServerError.WriteError(w)
	}
}

func writeBadRequest(w http.ResponseWriter, description string) {
	shmsdk.NewAPIError(http.StatusBadRequest, shmsdk.ErrorCodeInvalidRequest, description).WriteError(w)
}

// pathID returns the {id} path segment. Anything that is not a ULID cannot
// name a record, so it is answered with 404 without touching the store.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		shmsdk.ErrNotFound.WriteError(w)
		return "", false
	}
	return id.String(), true
}
