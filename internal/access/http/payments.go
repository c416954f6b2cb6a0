package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/service"
	"github.com/barzolagym/gymos/pkg/gymsdk"
	"github.com/barzolagym/gymos/pkg/httpx"
	"github.com/barzolagym/gymos/pkg/slogx"
)

type PaymentsHandler struct {
	LedgerService *service.LedgerService
}

func paymentResponse(p domain.Payment) gymsdk.PaymentResponse {
	return gymsdk.PaymentResponse{
		ID:          p.ID,
		MemberID:    p.MemberID,
		Months:      p.Months,
		AmountCents: p.AmountCents,
		AppliedAt:   p.AppliedAt.Format(time.RFC3339),
	}
}

// HandleApply godoc
//
//	@Summary		Apply Payment Endpoint
//	@Description	Record a payment and extend the member's expiration. Active members
//	@Description	extend from their current expiration; lapsed members restart from now.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Member ID"
//	@Param			request	body		gymsdk.ApplyPaymentRequest	true	"Months purchased and amount"
//	@Success		201		{object}	gymsdk.ApplyPaymentResponse	"payment, expires_at"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/members/{id}/payments [post].
func (h *PaymentsHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gymsdk.ApplyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	payment, expiresAt, err := h.LedgerService.ApplyPayment(ctx, r.PathValue("id"), req.Months, req.AmountCents, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMonths):
			httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "months must be positive")
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteError(w, http.StatusNotFound, gymsdk.ErrorCodeNotFound, "Member not found")
		case errors.Is(err, service.ErrLedgerConflict):
			httpx.WriteError(w, http.StatusConflict, gymsdk.ErrorCodeConflict, "Concurrent update on this member, retry")
		default:
			log.Error("failed to apply payment", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to apply payment")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, gymsdk.ApplyPaymentResponse{
		Payment:   paymentResponse(payment),
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// HandleList godoc
//
//	@Summary		List Payments Endpoint
//	@Description	List a member's payment history, newest first
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string						true	"Member ID"
//	@Success		200	{object}	gymsdk.PaymentListResponse	"payments"
//	@Failure		404	{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/members/{id}/payments [get].
func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	payments, err := h.LedgerService.ListPayments(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			httpx.WriteError(w, http.StatusNotFound, gymsdk.ErrorCodeNotFound, "Member not found")
			return
		}
		log.Error("failed to list payments", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to list payments")
		return
	}

	response := gymsdk.PaymentListResponse{
		Payments: make([]gymsdk.PaymentResponse, 0, len(payments)),
	}
	for _, p := range payments {
		response.Payments = append(response.Payments, paymentResponse(p))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleReverse godoc
//
//	@Summary		Reverse Payment Endpoint
//	@Description	Delete a payment and subtract its purchased time from the member's
//	@Description	current expiration. Reversals apply to the expiration as it stands now,
//	@Description	so reversing out of order can land on a different date than reversing
//	@Description	in order.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string							true	"Payment ID"
//	@Success		200	{object}	gymsdk.ReversePaymentResponse	"expires_at"
//	@Failure		404	{object}	gymsdk.ErrorResponse			"error, error_description"
//	@Failure		409	{object}	gymsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	gymsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/payments/{id} [delete].
func (h *PaymentsHandler) HandleReverse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	expiresAt, err := h.LedgerService.ReversePayment(ctx, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			httpx.WriteError(w, http.StatusNotFound, gymsdk.ErrorCodeNotFound, "Payment not found")
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteError(w, http.StatusNotFound, gymsdk.ErrorCodeNotFound, "Member not found")
		case errors.Is(err, service.ErrLedgerConflict):
			httpx.WriteError(w, http.StatusConflict, gymsdk.ErrorCodeConflict, "Concurrent update on this member, retry")
		default:
			log.Error("failed to reverse payment", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to reverse payment")
		}
		return
	}

	response := gymsdk.ReversePaymentResponse{}
	if expiresAt != nil {
		response.ExpiresAt = expiresAt.Format(time.RFC3339)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
