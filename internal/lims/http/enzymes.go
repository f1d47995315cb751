package http

import (
	"net/http"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
)

type EnzymesHandler struct {
	EnzymeService *service.EnzymeService
}

// HandleCreate records a new enzyme.
//
//	@Summary		Create enzyme
//	@Description	Requires the researcher role.
//	@Tags			Enzymes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		limssdk.EnzymeRequest			true	"Enzyme"
//	@Success		201		{object}	limssdk.Enzyme					"Created enzyme"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Validation failed"
//	@Failure		403		{object}	limssdk.ErrorResponse			"Requires researcher"
//	@Security		BearerAuth
//	@Router			/v1/enzymes [post].
func (h *EnzymesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req limssdk.EnzymeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	e, err := h.EnzymeService.Create(r.Context(), fromEnzymeRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEnzyme(e))
}

// HandleList returns enzymes, optionally filtered by type and specialization.
//
//	@Summary		List enzymes
//	@Tags			Enzymes
//	@Produce		json
//	@Param			type			query		string						false	"ancestral, modern or intermediate"
//	@Param			specialization	query		string						false	"promiscuous, thca, cbda or cbca"
//	@Success		200				{object}	limssdk.ListEnzymesResponse	"Enzymes"
//	@Security		BearerAuth
//	@Router			/v1/enzymes [get].
func (h *EnzymesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	enzymes, err := h.EnzymeService.List(r.Context(), store.EnzymeFilter{
		Type:           domain.EnzymeType(q.Get("type")),
		Specialization: domain.Specialization(q.Get("specialization")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, enzymeList(enzymes))
}

// HandleGet returns a single enzyme.
//
//	@Summary		Get enzyme
//	@Tags			Enzymes
//	@Produce		json
//	@Param			id	path		string					true	"Enzyme ID"
//	@Success		200	{object}	limssdk.Enzyme			"Enzyme"
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/enzymes/{id} [get].
func (h *EnzymesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.EnzymeService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEnzyme(e))
}

// HandleUpdate replaces an enzyme's attributes.
//
//	@Summary		Update enzyme
//	@Description	Requires the researcher role. A rename is carried to the enzyme's batches.
//	@Tags			Enzymes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Enzyme ID"
//	@Param			request	body		limssdk.EnzymeRequest			true	"Enzyme"
//	@Success		200		{object}	limssdk.Enzyme					"Updated enzyme"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Validation failed"
//	@Failure		404		{object}	limssdk.ErrorResponse			"Not found"
//	@Security		BearerAuth
//	@Router			/v1/enzymes/{id} [put].
func (h *EnzymesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req limssdk.EnzymeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	e, err := h.EnzymeService.Update(r.Context(), r.PathValue("id"), fromEnzymeRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEnzyme(e))
}

// HandleDelete removes an enzyme. Its batches are kept.
//
//	@Summary		Delete enzyme
//	@Description	Requires the admin role.
//	@Tags			Enzymes
//	@Param			id	path	string	true	"Enzyme ID"
//	@Success		204
//	@Failure		403	{object}	limssdk.ErrorResponse	"Requires admin"
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/enzymes/{id} [delete].
func (h *EnzymesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.EnzymeService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleYield summarises the enzyme's batches.
//
//	@Summary		Enzyme yield summary
//	@Description	Batch count, average product percentages, best total and the batches holding peak-yield status.
//	@Tags			Enzymes
//	@Produce		json
//	@Param			id	path		string					true	"Enzyme ID"
//	@Success		200	{object}	limssdk.YieldSummary	"Summary"
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/enzymes/{id}/yield [get].
func (h *EnzymesHandler) HandleYield(w http.ResponseWriter, r *http.Request) {
	s, err := h.EnzymeService.YieldSummary(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toYieldSummary(s))
}

// HandlePhylogeny lists the enzymes that carry a Newick tree.
//
//	@Summary		Phylogeny
//	@Tags			Enzymes
//	@Produce		json
//	@Success		200	{object}	limssdk.ListEnzymesResponse	"Enzymes with Newick data"
//	@Security		BearerAuth
//	@Router			/v1/phylogeny [get].
func (h *EnzymesHandler) HandlePhylogeny(w http.ResponseWriter, r *http.Request) {
	enzymes, err := h.EnzymeService.Phylogeny(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, enzymeList(enzymes))
}

func enzymeList(enzymes []domain.Enzyme) limssdk.ListEnzymesResponse {
	resp := limssdk.ListEnzymesResponse{Enzymes: make([]limssdk.Enzyme, len(enzymes))}
	for i, e := range enzymes {
		resp.Enzymes[i] = toEnzyme(e)
	}
	return resp
}
