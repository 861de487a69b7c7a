package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/pkg/problem"
)

type PaymentHandler struct {
	Svc core.PaymentService
	Log *slog.Logger
}

func NewPaymentHandler(svc core.PaymentService, log *slog.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Log: log}
}

func (h *PaymentHandler) Mount(r chi.Router) {
	r.Get("/policies/{policy_number}/installments", h.Schedule)
	r.Get("/policies/{policy_number}/installments/{installment_id}/payability", h.Payability)
}

// Schedule returns the annotated installment schedule.
// 200: JSON; 404: policy not found; 500: internal error.
func (h *PaymentHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "policy_number")
	if number == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Policy Number", "Path parameter policy_number is required.")
		return
	}

	sched, err := h.Svc.Schedule(r.Context(), number)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to build payment schedule")
		return
	}
	if sched.Rows == nil {
		sched.Rows = []core.ScheduleRow{}
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, sched)
}

// Payability is the submit-time gate for a single installment. A refusal is
// still a 200 with payable=false and a reason.
// 200: JSON; 404: policy or installment not found; 500: internal error.
func (h *PaymentHandler) Payability(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "policy_number")
	installmentID := chi.URLParam(r, "installment_id")
	if number == "" || installmentID == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Path Parameter", "policy_number and installment_id are required.")
		return
	}

	res, err := h.Svc.CheckPayable(r.Context(), number, installmentID)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to check installment")
		return
	}
	if !res.Payable {
		h.Log.InfoContext(r.Context(), "installment not payable",
			"policy_number", number,
			"installment_id", installmentID,
			"reason", res.Reason,
		)
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, res)
}
