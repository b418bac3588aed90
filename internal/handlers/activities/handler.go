// internal/handlers/activities/handler.go
package activities

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	apierrors "activities-api/internal/common/errors"
	"activities-api/internal/common/logger"
	"activities-api/internal/common/metrics"
	"activities-api/internal/common/observability"
	"activities-api/internal/registry"
)

// Route patterns registered on the server mux. Path segments arrive
// URL-decoded, so names like "Chess Club" match their escaped form.
const (
	RouteList       = "GET /activities"
	RouteSignup     = "POST /activities/{name}/signup"
	RouteUnregister = "POST /activities/{name}/unregister"
)

type Handler struct {
	registry *registry.Registry
	obs      *observability.Observability
	errors   *apierrors.ErrorHandler
	logger   logger.Logger
}

func NewHandler(reg *registry.Registry, obs *observability.Observability, log logger.Logger) *Handler {
	return &Handler{
		registry: reg,
		obs:      obs,
		errors:   apierrors.NewErrorHandler(log),
		logger:   log.WithFields(map[string]interface{}{"component": "activities"}),
	}
}

// Register attaches the activity routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc(RouteList, h.List)
	mux.HandleFunc(RouteSignup, h.Signup)
	mux.HandleFunc(RouteUnregister, h.Unregister)
}

// List serves the full activity map keyed by name.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	snapshot := h.registry.List()
	out := make(map[string]ActivityDetail, len(snapshot))
	for name, a := range snapshot {
		out[name] = toDetail(a)
	}

	h.obs.RecordOperation(r.Context(), "list", "success")
	h.obs.RecordOperationDuration(r.Context(), time.Since(start), "list")
	h.respondJSON(w, http.StatusOK, out)
}

// Signup adds a student email to an activity's roster.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	if email == "" {
		metrics.RosterSignupsTotal.WithLabelValues("unknown", "missing_email").Inc()
		h.obs.RecordOperation(r.Context(), "signup", "missing_email")
		h.errors.HandleRequestError(w, r, apierrors.NewMissingParameterError("email"))
		return
	}

	if err := h.registry.Signup(name, email); err != nil {
		var apiErr *apierrors.APIError
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			metrics.RosterSignupsTotal.WithLabelValues("unknown", "not_found").Inc()
			h.obs.RecordOperation(r.Context(), "signup", "not_found")
			apiErr = apierrors.NewActivityNotFoundError()
		case errors.Is(err, registry.ErrAlreadySignedUp):
			metrics.RosterSignupsTotal.WithLabelValues(name, "duplicate").Inc()
			h.obs.RecordOperation(r.Context(), "signup", "duplicate")
			apiErr = apierrors.NewAlreadySignedUpError()
		default:
			h.obs.RecordOperation(r.Context(), "signup", "error")
			apiErr = apierrors.NewInternalError(err)
		}
		h.errors.HandleRequestError(w, r, apiErr)
		return
	}

	metrics.RosterSignupsTotal.WithLabelValues(name, "success").Inc()
	h.obs.RecordOperation(r.Context(), "signup", "success")
	h.obs.RecordOperationDuration(r.Context(), time.Since(start), "signup")

	h.logger.Info("student signed up", map[string]interface{}{
		"activity": name,
		"email":    email,
	})
	h.respondJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister removes a student email from an activity's roster.
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	if email == "" {
		metrics.RosterUnregistersTotal.WithLabelValues("unknown", "missing_email").Inc()
		h.obs.RecordOperation(r.Context(), "unregister", "missing_email")
		h.errors.HandleRequestError(w, r, apierrors.NewMissingParameterError("email"))
		return
	}

	if err := h.registry.Unregister(name, email); err != nil {
		var apiErr *apierrors.APIError
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			metrics.RosterUnregistersTotal.WithLabelValues("unknown", "not_found").Inc()
			h.obs.RecordOperation(r.Context(), "unregister", "not_found")
			apiErr = apierrors.NewActivityNotFoundError()
		case errors.Is(err, registry.ErrNotSignedUp):
			metrics.RosterUnregistersTotal.WithLabelValues(name, "not_member").Inc()
			h.obs.RecordOperation(r.Context(), "unregister", "not_member")
			apiErr = apierrors.NewNotSignedUpError()
		default:
			h.obs.RecordOperation(r.Context(), "unregister", "error")
			apiErr = apierrors.NewInternalError(err)
		}
		h.errors.HandleRequestError(w, r, apiErr)
		return
	}

	metrics.RosterUnregistersTotal.WithLabelValues(name, "success").Inc()
	h.obs.RecordOperation(r.Context(), "unregister", "success")
	h.obs.RecordOperationDuration(r.Context(), time.Since(start), "unregister")

	h.logger.Info("student unregistered", map[string]interface{}{
		"activity": name,
		"email":    email,
	})
	h.respondJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
