package http

import (
	"net/http"

	"github.com/aussiebroadwan/shm/internal/shm/service"
	"github.com/aussiebroadwan/shm/pkg/httpx"
	"github.com/aussiebroadwan/shm/pkg/shmsdk"
)

// MeetingsHandler handles all meeting endpoints.
type MeetingsHandler struct {
	MeetingService     *service.MeetingService
	StakeholderService *service.StakeholderService
}

// HandleList handles GET /v1/meetings
//
//	@Summary		List Meetings
//	@Description	Returns id, title and date of every meeting in the order they were created.
//	@Tags			Meetings
//	@Produce		json
//	@Success		200	{object}	shmsdk.ListMeetingsResponse	"meetings"
//	@Failure		500	{object}	shmsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/meetings [get].
func (h *MeetingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.MeetingService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, "failed to list meetings", err)
		return
	}

	response := shmsdk.ListMeetingsResponse{
		Meetings: make([]shmsdk.MeetingSummary, len(all)),
	}
	for i, m := range all {
		response.Meetings[i] = shmsdk.MeetingSummary{ID: m.ID, Title: m.Title, Date: m.Date}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleCreate handles POST /v1/meetings
//
//	@Summary		Create Meeting
//	@Description	Stores a meeting attended by the union of stakeholder_ids and invite_stakeholder_ids.
//	@Description	If any stakeholder id is unknown nothing is stored.
//	@Tags			Meetings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shmsdk.CreateMeetingRequest		true	"Meeting creation request"
//	@Success		201		{object}	shmsdk.CreateMeetingResponse	"id"
//	@Failure		400		{object}	shmsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	shmsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	shmsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/meetings [post].
func (h *MeetingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req shmsdk.CreateMeetingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON in request body")
		return
	}

	id, err := h.MeetingService.Create(r.Context(), service.CreateMeetingInput{
		Title:             req.Title,
		Date:              req.Date,
		Notes:             req.Notes,
		AttendeeIDs:       req.StakeholderIDs,
		InviteAttendeeIDs: req.InviteStakeholderIDs,
	})
	if err != nil {
		writeError(w, r, "failed to create meeting", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, shmsdk.CreateMeetingResponse{ID: id})
}

// HandleGet handles GET /v1/meetings/{id}
//
//	@Summary		Get Meeting
//	@Description	Returns a meeting with its notes and attendees. Attendees carry a display name for rendering.
//	@Tags			Meetings
//	@Produce		json
//	@Param			id	path		string					true	"Meeting ID (ULID)"
//	@Success		200	{object}	shmsdk.Meeting			"meeting"
//	@Failure		404	{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/meetings/{id} [get].
func (h *MeetingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	meeting, err := h.MeetingService.Get(ctx, id)
	if err != nil {
		writeError(w, r, "failed to get meeting", err)
		return
	}

	attendeeIDs, err := h.MeetingService.GetAttendees(ctx, id)
	if err != nil {
		writeError(w, r, "failed to list meeting attendees", err)
		return
	}

	dir, err := h.StakeholderService.Snapshot(ctx)
	if err != nil {
		writeError(w, r, "failed to load stakeholders", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMeeting(meeting, dir, attendeeIDs))
}

// HandleAttendees handles GET /v1/meetings/{id}/attendees
//
//	@Summary		List Meeting Attendees
//	@Description	Returns the stakeholder ids attending a meeting. An unknown meeting has no attendees.
//	@Description	An id that is not a ULID is answered with 404.
//	@Tags			Meetings
//	@Produce		json
//	@Param			id	path		string							true	"Meeting ID (ULID)"
//	@Success		200	{object}	shmsdk.MeetingAttendeesResponse	"stakeholder_ids"
//	@Failure		404	{object}	shmsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	shmsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/meetings/{id}/attendees [get].
func (h *MeetingsHandler) HandleAttendees(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ids, err := h.MeetingService.GetAttendees(r.Context(), id)
	if err != nil {
		writeError(w, r, "failed to list meeting attendees", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shmsdk.MeetingAttendeesResponse{StakeholderIDs: ids})
}

// HandleUpdate handles PUT /v1/meetings/{id}
//
//	@Summary		Update Meeting
//	@Description	Overwrites the notes and replaces the attendance set with stakeholder_ids.
//	@Description	An empty list removes every attendee.
//	@Tags			Meetings
//	@Accept			json
//	@Param			id		path	string						true	"Meeting ID (ULID)"
//	@Param			request	body	shmsdk.UpdateMeetingRequest	true	"notes, stakeholder_ids"
//	@Success		204		"Meeting updated"
//	@Failure		400		{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/meetings/{id} [put].
func (h *MeetingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req shmsdk.UpdateMeetingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON in request body")
		return
	}

	err := h.MeetingService.UpdateNotesAndAttendees(r.Context(), id, req.Notes, req.StakeholderIDs)
	if err != nil {
		writeError(w, r, "failed to update meeting", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
