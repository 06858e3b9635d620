package http

import (
	"net/http"

	"github.com/aussiebroadwan/shm/internal/shm/service"
	"github.com/aussiebroadwan/shm/pkg/httpx"
	"github.com/aussiebroadwan/shm/pkg/shmsdk"
)

// StakeholdersHandler serves the stakeholder directory.
type StakeholdersHandler struct {
	StakeholderService *service.StakeholderService
}

// HandleList handles GET /v1/stakeholders
//
//	@Summary		List Stakeholders
//	@Description	Returns every stakeholder in the order they were added, with a display name for pickers.
//	@Tags			Stakeholders
//	@Produce		json
//	@Success		200	{object}	shmsdk.ListStakeholdersResponse	"stakeholders"
//	@Failure		500	{object}	shmsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/stakeholders [get].
func (h *StakeholdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.StakeholderService.List(r.Context())
	if err != nil {
		writeError(w, r, "failed to list stakeholders", err)
		return
	}

	response := shmsdk.ListStakeholdersResponse{
		Stakeholders: make([]shmsdk.Stakeholder, len(all)),
	}
	for i, s := range all {
		response.Stakeholders[i] = toStakeholder(s)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet handles GET /v1/stakeholders/{id}
//
//	@Summary		Get Stakeholder
//	@Tags			Stakeholders
//	@Produce		json
//	@Param			id	path		string					true	"Stakeholder ID (ULID)"
//	@Success		200	{object}	shmsdk.Stakeholder		"stakeholder"
//	@Failure		404	{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	shmsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/stakeholders/{id} [get].
func (h *StakeholdersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s, err := h.StakeholderService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "failed to get stakeholder", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toStakeholder(s))
}

// HandleFindOrCreate handles POST /v1/stakeholders
//
//	@Summary		Find or Create Stakeholder
//	@Description	Returns the stakeholder owning the email, creating it with the given names if there is none.
//	@Description	Emails are matched exactly. Names are ignored when the stakeholder already exists.
//	@Tags			Stakeholders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shmsdk.CreateStakeholderRequest	true	"email, first_name, last_name"
//	@Success		200		{object}	shmsdk.Stakeholder				"stakeholder"
//	@Failure		400		{object}	shmsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	shmsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/stakeholders [post].
func (h *StakeholdersHandler) HandleFindOrCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req shmsdk.CreateStakeholderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON in request body")
		return
	}

	id, err := h.StakeholderService.FindOrCreate(ctx, req.Email, req.FirstName, req.LastName)
	if err != nil {
		writeError(w, r, "failed to find or create stakeholder", err)
		return
	}

	s, err := h.StakeholderService.Get(ctx, id)
	if err != nil {
		writeError(w, r, "failed to load stakeholder", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toStakeholder(s))
}
