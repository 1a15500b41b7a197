package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/transport"
)

// RoleAuthorization gates routes on the principal's role. It must run after
// AuthMiddleware.
type RoleAuthorization struct {
	*transport.BaseHandler
}

func NewRoleAuthorization(logger *slog.Logger) *RoleAuthorization {
	return &RoleAuthorization{BaseHandler: transport.NewBaseHandler(logger)}
}

func (ra *RoleAuthorization) RequireRole(role string, denied *internal.AppError) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok {
				ra.Logger.WarnContext(r.Context(), "authorization check failed: user not found in context")
				ra.WriteAppError(w, r, internal.ErrMissingToken)
				return
			}

			if user.Role != role {
				ra.Logger.WarnContext(r.Context(), "access denied: role required",
					"user_id", user.ID,
					"required_role", role,
					"user_role", user.Role)
				ra.WriteAppError(w, r, denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (ra *RoleAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.RequireRole(internal.RoleAdmin, internal.ErrAdminRequired)
}
