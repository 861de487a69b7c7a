package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/pkg/problem"
)

type PolicyHandler struct {
	Svc core.PolicyService
	Log *slog.Logger
}

func NewPolicyHandler(svc core.PolicyService, log *slog.Logger) *PolicyHandler {
	return &PolicyHandler{Svc: svc, Log: log}
}

// Mount registers flat routes so the payment and claim handlers can share
// the /policies/{policy_number} prefix.
func (h *PolicyHandler) Mount(r chi.Router) {
	r.Get("/policies", h.List)
	r.Get("/policies/{policy_number}", h.Get)
}

// Get retrieves a policy by its number.
// 200: JSON; 400: missing number; 404: not found; 500: internal error.
func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "policy_number")
	if number == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Policy Number", "Path parameter policy_number is required.")
		return
	}

	policy, err := h.Svc.GetByNumber(r.Context(), number)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get policy")
		return
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, policy)
}

// List returns policies filtered by holder_email and status, newest first.
// 200: JSON; 500: internal error.
func (h *PolicyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	policies, total, err := h.Svc.List(r.Context(), policyFilter(r), limit, offset)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list policies")
		return
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, newPage(policies, total, limit, offset))
}
