package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/blob"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
)

// readyzProbeKey is looked up (never written) to check the object store.
const readyzProbeKey = "readyz/probe"

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database, token signer and object store
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	limssdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	limssdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
	objects blob.Store,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &limssdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
			Blob:     "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check if JWT signer/verifier has keys loaded
		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check the object store answers; a missing key is a healthy answer
		if _, err := objects.Head(r.Context(), readyzProbeKey); err != nil && !errors.Is(err, blob.ErrNotFound) {
			checks.Blob = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, limssdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
