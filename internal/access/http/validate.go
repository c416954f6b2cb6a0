package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/barzolagym/gymos/internal/access/service"
	"github.com/barzolagym/gymos/pkg/gymsdk"
	"github.com/barzolagym/gymos/pkg/httpx"
	"github.com/barzolagym/gymos/pkg/slogx"
)

type ValidateHandler struct {
	ValidatorService *service.ValidatorService
}

// ServeHTTP godoc
//
//	@Summary		Validate Access Endpoint
//	@Description	Validate a raw scanned payload and decide whether to open the door.
//	@Description	Denials return 200 with the denial reason; every attempt, granted or
//	@Description	denied, is recorded in the access log.
//	@Tags			Access
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.ValidateRequest	true	"Raw scanned payload"
//	@Success		200		{object}	gymsdk.ValidateResponse	"outcome, reason, member_id"
//	@Failure		400		{object}	gymsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	gymsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/access/validate [post].
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gymsdk.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	// An empty payload still goes through the pipeline so it is audited as a
	// malformed attempt like any other.
	decision, err := h.ValidatorService.Validate(ctx, req.Payload, time.Now().UTC())
	if err != nil {
		log.Error("failed to validate access attempt", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to validate access attempt")
		return
	}

	response := gymsdk.ValidateResponse{
		Outcome: string(decision.Outcome),
		Reason:  string(decision.Reason),
	}
	if decision.Member != nil {
		response.MemberID = decision.Member.ID
		response.MemberName = decision.Member.Name
		if decision.Member.ExpiresAt != nil {
			response.ExpiresAt = decision.Member.ExpiresAt.Format(time.RFC3339)
		}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
