package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/stacks/pkg/httpx"
	"github.com/aussiebroadwan/stacks/pkg/librarysdk"
)

// Pinger is the part of the store readiness depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe; reports 503 while the database is unreachable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	librarysdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	librarysdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &librarysdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := db.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, librarysdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
