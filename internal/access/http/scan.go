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

type ScanEventsHandler struct {
	IntakeService *service.IntakeService
}

// HandleSubmit godoc
//
//	@Summary		Submit Scan Event Endpoint
//	@Description	Enqueue a raw scan from a door device. The payload is stored verbatim
//	@Description	and judged later, at consumption time.
//	@Tags			ScanEvents
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.SubmitScanRequest	true	"Raw scanned payload"
//	@Success		201		{object}	gymsdk.SubmitScanResponse	"event_id"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/scan-events [post].
func (h *ScanEventsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gymsdk.SubmitScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Payload == "" {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "payload is required")
		return
	}

	eventID, err := h.IntakeService.Submit(ctx, req.Payload, time.Now().UTC())
	if err != nil {
		log.Error("failed to submit scan event", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to submit scan event")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, gymsdk.SubmitScanResponse{EventID: eventID})
}

// HandlePoll godoc
//
//	@Summary		Poll Scan Events Endpoint
//	@Description	Dequeue the oldest pending scan event. Each event is delivered to at
//	@Description	most one poller; an empty queue returns found=false with 200.
//	@Tags			ScanEvents
//	@Produce		json
//	@Success		200	{object}	gymsdk.PollScanResponse	"found, event_id, payload, received_at"
//	@Failure		500	{object}	gymsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/scan-events/poll [get].
func (h *ScanEventsHandler) HandlePoll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	event, found, err := h.IntakeService.Poll(ctx)
	if err != nil {
		log.Error("failed to poll scan events", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to poll scan events")
		return
	}

	response := gymsdk.PollScanResponse{Found: found}
	if found {
		response.EventID = event.ID
		response.Payload = event.Payload
		response.ReceivedAt = event.ReceivedAt.Format(time.RFC3339Nano)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
