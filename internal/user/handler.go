package user

import (
	"net/http"

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

// Register handles POST /api/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if aerr := h.DecodeJSON(r, &dto); aerr != nil {
		h.WriteAppError(w, r, aerr)
		return
	}

	if _, err := h.Service.Register(r.Context(), dto); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, MessageResponse{Message: "Registration successful"})
}
