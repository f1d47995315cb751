package http

import (
	"net/http"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
)

type BatchesHandler struct {
	BatchService *service.BatchService
}

// HandleCreate records a production batch for the caller.
//
//	@Summary		Record batch
//	@Description	THCA + CBDA + CBCA must lie within 95 to 105 percent. The batch is classified against the enzyme's earlier batches and marked peak-yield when its total is at least their best.
//	@Tags			Batches
//	@Accept			json
//	@Produce		json
//	@Param			request	body		limssdk.CreateBatchRequest		true	"Batch"
//	@Success		201		{object}	limssdk.Batch					"Created batch"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Validation failed or outputs out of range"
//	@Failure		404		{object}	limssdk.ErrorResponse			"Enzyme not found"
//	@Security		BearerAuth
//	@Router			/v1/batches [post].
func (h *BatchesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req limssdk.CreateBatchRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	b, err := h.BatchService.CreateBatch(r.Context(), identityFromRequest(r), domain.BatchInput{
		EnzymeID:  req.EnzymeID,
		CBGAInput: req.CBGAInput,
		Outputs: domain.CannabinoidOutputs{
			THCA: req.Outputs.THCA,
			CBDA: req.Outputs.CBDA,
			CBCA: req.Outputs.CBCA,
		},
		Notes: req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toBatch(b))
}

// HandleList returns batches, newest first.
//
//	@Summary		List batches
//	@Tags			Batches
//	@Produce		json
//	@Param			enzymeId	query		string						false	"Enzyme ID"
//	@Param			labTechId	query		string						false	"Lab technician user ID"
//	@Param			status		query		string						false	"in-progress, completed or peak-yield"
//	@Success		200			{object}	limssdk.ListBatchesResponse	"Batches"
//	@Failure		400			{object}	limssdk.ValidationErrorResponse	"Unknown status"
//	@Security		BearerAuth
//	@Router			/v1/batches [get].
func (h *BatchesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	batches, err := h.BatchService.List(r.Context(), store.BatchFilter{
		EnzymeID:  q.Get("enzymeId"),
		LabTechID: q.Get("labTechId"),
		Status:    domain.BatchStatus(q.Get("status")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := limssdk.ListBatchesResponse{Batches: make([]limssdk.Batch, len(batches))}
	for i, b := range batches {
		resp.Batches[i] = toBatch(b)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet returns one batch.
//
//	@Summary		Get batch
//	@Tags			Batches
//	@Produce		json
//	@Param			id	path		string					true	"Batch ID"
//	@Success		200	{object}	limssdk.Batch			"Batch"
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/batches/{id} [get].
func (h *BatchesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	b, err := h.BatchService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBatch(b))
}

// HandleUpdateStatus moves a batch along its lifecycle.
//
//	@Summary		Update batch status
//	@Description	Only in-progress to completed is allowed. Peak-yield is assigned on creation and never changes.
//	@Tags			Batches
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Batch ID"
//	@Param			request	body		limssdk.UpdateBatchStatusRequest	true	"New status"
//	@Success		200		{object}	limssdk.Batch					"Updated batch"
//	@Failure		400		{object}	limssdk.ValidationErrorResponse	"Unknown status"
//	@Failure		404		{object}	limssdk.ErrorResponse			"Not found"
//	@Failure		409		{object}	limssdk.ErrorResponse			"Transition not allowed"
//	@Security		BearerAuth
//	@Router			/v1/batches/{id}/status [patch].
func (h *BatchesHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req limssdk.UpdateBatchStatusRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	b, err := h.BatchService.UpdateStatus(r.Context(), r.PathValue("id"), domain.BatchStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBatch(b))
}

// HandleDelete removes a batch.
//
//	@Summary		Delete batch
//	@Description	Requires the researcher role.
//	@Tags			Batches
//	@Param			id	path	string	true	"Batch ID"
//	@Success		204
//	@Failure		403	{object}	limssdk.ErrorResponse	"Requires researcher"
//	@Failure		404	{object}	limssdk.ErrorResponse	"Not found"
//	@Security		BearerAuth
//	@Router			/v1/batches/{id} [delete].
func (h *BatchesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.BatchService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
