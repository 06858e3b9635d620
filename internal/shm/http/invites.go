package http

import (
	"net/http"

	"github.com/aussiebroadwan/shm/internal/shm/service"
	"github.com/aussiebroadwan/shm/pkg/httpx"
)

// InvitesHandler accepts raw .ics uploads.
type InvitesHandler struct {
	ImportService *service.ImportService
	MaxBytes      int64
}

// HandleParse handles POST /v1/invites/parse
//
//	@Summary		Parse Invite
//	@Description	Extracts title, start, description and attendees from the first event of an .ics document.
//	@Description	Nothing is stored.
//	@Tags			Invites
//	@Accept			text/calendar
//	@Produce		json
//	@Param			invite	body		string					true	"iCalendar document"
//	@Success		200		{object}	shmsdk.InviteDraft		"title, date, notes, attendees"
//	@Failure		413		{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Failure		422		{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/invites/parse [post].
func (h *InvitesHandler) HandleParse(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody(r, h.MaxBytes)
	if err != nil {
		writeError(w, r, "failed to read invite", err)
		return
	}

	draft, err := h.ImportService.Parse(r.Context(), payload)
	if err != nil {
		writeError(w, r, "failed to parse invite", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInviteDraft(draft))
}

// HandleImport handles POST /v1/invites/import
//
//	@Summary		Import Invite
//	@Description	Parses an .ics document and finds or creates a stakeholder for every attendee.
//	@Description	The returned stakeholder_ids can be passed as invite_stakeholder_ids when creating the meeting.
//	@Tags			Invites
//	@Accept			text/calendar
//	@Produce		json
//	@Param			invite	body		string						true	"iCalendar document"
//	@Success		200		{object}	shmsdk.ImportInviteResponse	"draft, attendees, stakeholder_ids"
//	@Failure		413		{object}	shmsdk.ErrorResponse		"error, error_description"
//	@Failure		422		{object}	shmsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	shmsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/invites/import [post].
func (h *InvitesHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody(r, h.MaxBytes)
	if err != nil {
		writeError(w, r, "failed to read invite", err)
		return
	}

	result, err := h.ImportService.Import(r.Context(), payload)
	if err != nil {
		writeError(w, r, "failed to import invite", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toImportResponse(result))
}
