package http

import (
	"net/http"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// ServeHTTP returns the dashboard counters.
//
//	@Summary		Dashboard statistics
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	limssdk.Stats			"Counters"
//	@Failure		401	{object}	limssdk.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := h.StatsService.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, limssdk.Stats{
		Batches:           s.Batches,
		PeakYieldBatches:  s.PeakYieldBatches,
		InProgressBatches: s.InProgressBatches,
		CompletedBatches:  s.CompletedBatches,
		Enzymes:           s.Enzymes,
		Organisms:         s.Organisms,
	})
}
