package complaint

import (
	"net/http"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     svc,
	}
}

func (h *Handler) principal(w http.ResponseWriter, r *http.Request) (*internal.User, bool) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, r, internal.ErrMissingToken)
		return nil, false
	}
	return user, true
}

// SubmitComplaint handles POST /api/complaints
func (h *Handler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	user, ok := h.principal(w, r)
	if !ok {
		return
	}

	var dto CreateComplaintDTO
	if aerr := h.DecodeJSON(r, &dto); aerr != nil {
		h.WriteAppError(w, r, aerr)
		return
	}

	c, err := h.Service.Submit(r.Context(), user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, SubmitResponse{
		Message:     "Complaint submitted successfully",
		ComplaintID: c.ID,
		Priority:    c.Priority,
	})
}

// ListComplaints handles GET /api/complaints
func (h *Handler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	user, ok := h.principal(w, r)
	if !ok {
		return
	}

	complaints, err := h.Service.ListForUser(r.Context(), user.ID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ListResponse{Complaints: complaints})
}

// GetComplaint handles GET /api/complaints/{id}
func (h *Handler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	user, ok := h.principal(w, r)
	if !ok {
		return
	}

	id, aerr := h.ParseIDParam(r, "id")
	if aerr != nil {
		h.WriteAppError(w, r, aerr)
		return
	}

	c, err := h.Service.GetForUser(r.Context(), user.ID, id)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DetailResponse{Complaint: c})
}

// ListAllComplaints handles GET /api/admin/complaints
func (h *Handler) ListAllComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.Service.ListAll(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, AdminListResponse{Complaints: complaints})
}

// GetStats handles GET /api/admin/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, StatsResponse{Stats: stats})
}

// UpdateComplaintStatus handles PUT /api/admin/complaints/{id}/status
func (h *Handler) UpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	id, aerr := h.ParseIDParam(r, "id")
	if aerr != nil {
		h.WriteAppError(w, r, aerr)
		return
	}

	var dto UpdateStatusDTO
	if aerr := h.DecodeJSON(r, &dto); aerr != nil {
		h.WriteAppError(w, r, aerr)
		return
	}

	if err := h.Service.UpdateStatus(r.Context(), id, dto); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Status updated successfully"})
}
