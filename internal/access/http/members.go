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

type MembersHandler struct {
	EnrollmentService *service.EnrollmentService
}

func memberResponse(m domain.Member, at time.Time) gymsdk.MemberResponse {
	resp := gymsdk.MemberResponse{
		ID:        m.ID,
		MemberNo:  m.MemberNo,
		Name:      m.Name,
		Status:    m.StatusAt(at),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.ExpiresAt != nil {
		resp.ExpiresAt = m.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}

// HandleEnroll godoc
//
//	@Summary		Enroll Member Endpoint
//	@Description	Register a new member with a freshly generated TOTP secret and hashed
//	@Description	PIN. The secret is never returned here; devices obtain it through the
//	@Description	provisioning endpoint after PIN verification.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gymsdk.EnrollMemberRequest	true	"Member details"
//	@Success		201		{object}	gymsdk.MemberResponse		"id, member_no, name, status"
//	@Failure		400		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/members [post].
func (h *MembersHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gymsdk.EnrollMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	member, err := h.EnrollmentService.Enroll(ctx, req.Name, req.MemberNo, req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEnrollment):
			httpx.WriteError(w, http.StatusBadRequest, gymsdk.ErrorCodeInvalidRequest, "name and member_no are required")
		case errors.Is(err, service.ErrMemberNumberTaken):
			httpx.WriteError(w, http.StatusConflict, gymsdk.ErrorCodeConflict, "Member number is already taken")
		default:
			log.Error("failed to enroll member", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to enroll member")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, memberResponse(member, time.Now()))
}

// HandleList godoc
//
//	@Summary		List Members Endpoint
//	@Description	List all members with their derived status, newest enrollment first
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	gymsdk.MemberListResponse	"members"
//	@Failure		500	{object}	gymsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	members, err := h.EnrollmentService.ListMembers(ctx)
	if err != nil {
		log.Error("failed to list members", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to list members")
		return
	}

	now := time.Now()
	response := gymsdk.MemberListResponse{
		Members: make([]gymsdk.MemberResponse, 0, len(members)),
	}
	for _, m := range members {
		response.Members = append(response.Members, memberResponse(m, now))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet godoc
//
//	@Summary		Get Member Endpoint
//	@Description	Fetch one member by id with their derived status
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		string					true	"Member ID"
//	@Success		200	{object}	gymsdk.MemberResponse	"id, member_no, name, status"
//	@Failure		404	{object}	gymsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	gymsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/members/{id} [get].
func (h *MembersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	member, err := h.EnrollmentService.GetMember(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			httpx.WriteError(w, http.StatusNotFound, gymsdk.ErrorCodeNotFound, "Member not found")
			return
		}
		log.Error("failed to get member", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, gymsdk.ErrorCodeServerError, "Failed to get member")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, memberResponse(member, time.Now()))
}
