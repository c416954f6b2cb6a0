package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/barzolagym/gymos/internal/access/service"
	"github.com/barzolagym/gymos/pkg/gymsdk"
	"github.com/barzolagym/gymos/pkg/httpx"
	"github.com/barzolagym/gymos/pkg/slogx"
)

type ProvisionHandler struct {
	EnrollmentService *service.EnrollmentService
}

// ServeHTTP godoc
//
//	@Summary		Provision Device Endpoint
//	@Description	Exchange a member number and PIN for the member's TOTP secret and an
//	@Description	otpauth:// URL. This is the only endpoint that exposes the secret and
//	@Description	its responses are marked no-store. Wrong PINs and unknown member
//	@Description	numbers are indistinguishable.
//	@Tags			Devices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.ProvisionRequest		true	"Member number and PIN"
//	@Success		200		{object}	gymsdk.ProvisionResponse	"member_id, secret, otpauth_url"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/devices/provision [post].
func (h *ProvisionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gymsdk.ProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.MemberNo == "" || req.PIN == "" {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "member_no and pin are required")
		return
	}

	result, err := h.EnrollmentService.Provision(ctx, req.MemberNo, req.PIN)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, gymsdk.ErrorCodeInvalidGrant, "Invalid member number or PIN")
			return
		}
		log.Error("failed to provision device", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to provision device")
		return
	}

	response := gymsdk.ProvisionResponse{
		MemberID:   result.MemberID,
		Name:       result.Name,
		Secret:     result.Secret,
		OtpauthURL: result.OtpauthURL,
		Status:     result.Status,
	}
	if result.ExpiresAt != nil {
		response.ExpiresAt = result.ExpiresAt.Format(time.RFC3339)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
