package auth

import (
	"net/http"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/transport"
	"github.com/frahmantamala/grievance-portal/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if aerr := h.DecodeJSON(r, &dto); aerr != nil {
		h.WriteAppError(w, r, aerr)
		return
	}

	result, err := h.Service.Authenticate(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.Account.ToCitizenView(),
	})
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if aerr := h.DecodeJSON(r, &dto); aerr != nil {
		h.WriteAppError(w, r, aerr)
		return
	}

	result, err := h.Service.AuthenticateAdmin(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.Logger.Info("admin logged in", "user_id", result.Account.ID)
	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Message: "Admin login successful",
		Token:   result.Token,
		User:    result.Account.ToAdminView(),
	})
}

// AuthMiddleware requires a valid bearer token and stores the principal in
// the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.ExtractTokenFromHeader(r)
		if err != nil || token == "" {
			h.WriteAppError(w, r, internal.ErrMissingToken)
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.HandleServiceError(w, r, err)
			return
		}

		principal, err := h.Service.ResolvePrincipal(r.Context(), claims)
		if err != nil {
			h.HandleServiceError(w, r, err)
			return
		}

		ctx := internal.ContextWithUser(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
