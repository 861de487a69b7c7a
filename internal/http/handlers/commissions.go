package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/pkg/problem"
)

// CommissionHandler exposes the standalone commission calculator.
type CommissionHandler struct {
	Log *slog.Logger
}

func NewCommissionHandler(log *slog.Logger) *CommissionHandler {
	return &CommissionHandler{Log: log}
}

func (h *CommissionHandler) Mount(r chi.Router) {
	r.Post("/commissions:apply", h.Apply)
}

// Apply marks a total up by a commission percentage.
// 200: JSON; 400: bad JSON/validation.
func (h *CommissionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var in core.CommissionInput
	if err := decodeJSON(r, &in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Body could not be decoded.")
		return
	}

	res, err := in.Apply()
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, res)
}
