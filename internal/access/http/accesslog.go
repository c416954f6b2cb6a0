package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/barzolagym/gymos/internal/access/store"
	"github.com/barzolagym/gymos/pkg/gymsdk"
	"github.com/barzolagym/gymos/pkg/httpx"
	"github.com/barzolagym/gymos/pkg/slogx"
)

const (
	defaultAccessLogLimit = 50
	maxAccessLogLimit     = 500
)

type AccessLogHandler struct {
	Store store.Store
}

// ServeHTTP godoc
//
//	@Summary		Access Log Endpoint
//	@Description	List recent validation decisions, newest first. Supports a limit query
//	@Description	parameter up to 500, defaulting to 50.
//	@Tags			Access
//	@Produce		json
//	@Param			limit	query		int						false	"Maximum rows to return"
//	@Success		200		{object}	gymsdk.AccessLogResponse	"decisions"
//	@Failure		500		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/access-log [get].
func (h *AccessLogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	limit := defaultAccessLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxAccessLogLimit)
	}

	decisions, err := h.Store.AccessLog().ListRecentDecisions(ctx, limit)
	if err != nil {
		log.Error("failed to list access decisions", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to list access decisions")
		return
	}

	response := gymsdk.AccessLogResponse{
		Decisions: make([]gymsdk.AccessLogEntry, 0, len(decisions)),
	}
	for _, d := range decisions {
		entry := gymsdk.AccessLogEntry{
			ID:        d.ID,
			Outcome:   string(d.Outcome),
			Reason:    string(d.Reason),
			DecidedAt: d.DecidedAt.Format(time.RFC3339Nano),
		}
		if d.MemberID != nil {
			entry.MemberID = *d.MemberID
		}
		response.Decisions = append(response.Decisions, entry)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
