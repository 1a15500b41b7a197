package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/pkg/logger"
	"github.com/go-chi/chi"
)

// ErrMalformedAuthorization is returned when an Authorization header is
// present but is not of the form "Bearer <token>".
var ErrMalformedAuthorization = errors.New("malformed authorization header")

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: logger.Contextual(lg)}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteAppError writes the AppError envelope with its status code. The log
// line carries the request's context fields.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, r *http.Request, appErr *internal.AppError) {
	ctx := r.Context()
	status, body := appErr.ToHTTPResponse()
	if status >= http.StatusInternalServerError {
		h.Logger.ErrorContext(ctx, "http error", "status", status, "code", appErr.Code, "error", appErr.Error())
	} else {
		h.Logger.WarnContext(ctx, "http error", "status", status, "code", appErr.Code, "message", appErr.GetDetailedMessage())
	}
	h.WriteJSON(w, status, body)
}

// HandleServiceError maps a service error onto the HTTP error envelope.
// Anything that is not an AppError is reported as an internal error.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteAppError(w, r, appErr)
		return
	}
	h.WriteAppError(w, r, internal.NewInternalError("internal server error", err))
}

// DecodeJSON decodes the request body into dst.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst interface{}) *internal.AppError {
	if r.Body == nil {
		return internal.ErrInvalidRequestBody
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return internal.ErrInvalidRequestBody.WithCause(err)
	}
	return nil
}

// ParseIDParam reads a positive integer chi URL parameter.
func (h *BaseHandler) ParseIDParam(r *http.Request, name string) (int64, *internal.AppError) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, internal.ErrInvalidID
	}
	return id, nil
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header.
// It returns an empty token and nil error when the header is absent.
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMalformedAuthorization
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMalformedAuthorization
	}
	return token, nil
}
