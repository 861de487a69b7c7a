package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/pkg/problem"
)

type ClaimHandler struct {
	Svc core.ClaimService
	Log *slog.Logger
}

func NewClaimHandler(svc core.ClaimService, log *slog.Logger) *ClaimHandler {
	return &ClaimHandler{Svc: svc, Log: log}
}

func (h *ClaimHandler) Mount(r chi.Router) {
	r.Get("/policies/{policy_number}/claims", h.List)
	r.Post("/policies/{policy_number}/claims", h.File)
	r.Get("/policies/{policy_number}/claims/eligibility", h.Eligibility)
	r.Get("/claims/eligibility", h.EligibilityForPolicies)
}

// fileClaimRequest accepts incident_date as YYYY-MM-DD or RFC 3339.
type fileClaimRequest struct {
	IncidentDate    string  `json:"incident_date"`
	Description     string  `json:"description"`
	EstimatedAmount float64 `json:"estimated_amount"`
}

func (req fileClaimRequest) toInput() (core.ClaimInput, bool) {
	in := core.ClaimInput{
		Description:     req.Description,
		EstimatedAmount: req.EstimatedAmount,
	}
	if req.IncidentDate == "" {
		return in, true
	}
	if t, err := time.Parse(time.RFC3339, req.IncidentDate); err == nil {
		in.IncidentDate = t
		return in, true
	}
	d, err := civil.ParseDate(req.IncidentDate)
	if err != nil {
		return in, false
	}
	in.IncidentDate = d.In(time.UTC)
	return in, true
}

// List returns the claims filed against a policy, oldest first.
// 200: JSON; 404: policy not found; 500: internal error.
func (h *ClaimHandler) List(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "policy_number")

	claims, err := h.Svc.List(r.Context(), number)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list claims")
		return
	}
	if claims == nil {
		claims = []core.Claim{}
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, claims)
}

// Eligibility reports whether a new claim may be filed on the policy.
// 200: JSON; 404: policy not found; 500: internal error.
func (h *ClaimHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "policy_number")

	res, err := h.Svc.Eligibility(r.Context(), number)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to evaluate claim eligibility")
		return
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, res)
}

// EligibilityForPolicies annotates a page of policies with their eligibility.
// 200: JSON; 500: internal error.
func (h *ClaimHandler) EligibilityForPolicies(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)

	items, total, err := h.Svc.EligibilityForPolicies(r.Context(), policyFilter(r), limit, offset)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to evaluate claim eligibility")
		return
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, newPage(items, total, limit, offset))
}

// File creates a pending claim after re-checking eligibility.
// 201: JSON; 400: bad JSON/validation; 404: policy not found;
// 409: not eligible (reason in body); 500: internal error.
func (h *ClaimHandler) File(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "policy_number")

	var req fileClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Body could not be decoded.")
		return
	}
	in, ok := req.toInput()
	if !ok {
		problem.Write(w, http.StatusBadRequest, "Validation Error", "incident_date must be YYYY-MM-DD or RFC 3339.")
		return
	}

	claim, err := h.Svc.File(r.Context(), number, in)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}

	h.Log.InfoContext(r.Context(), "claim filed", "policy_number", number, "claim_id", claim.ID)
	writeJSON(r.Context(), h.Log, w, http.StatusCreated, claim)
}
