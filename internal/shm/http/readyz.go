package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/shm/internal/shm/store"
	"github.com/aussiebroadwan/shm/pkg/httpx"
	"github.com/aussiebroadwan/shm/pkg/shmsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the status of the database
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	shmsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	shmsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &shmsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := shmsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
