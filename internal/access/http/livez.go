package http

import (
	"net/http"
	"time"

	"github.com/barzolagym/gymos/pkg/gymsdk"
	"github.com/barzolagym/gymos/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Reports process liveness with uptime and build version.
//	@Description	Always returns 200 OK while the process is up; dependency health lives under /readyz
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	gymsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, gymsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	}
}
