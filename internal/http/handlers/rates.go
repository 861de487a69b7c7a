package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/pkg/problem"
)

type RateHandler struct {
	Svc core.RateService
	Log *slog.Logger
}

func NewRateHandler(svc core.RateService, log *slog.Logger) *RateHandler {
	return &RateHandler{Svc: svc, Log: log}
}

func (h *RateHandler) Mount(r chi.Router) {
	r.Route("/rates", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{vehicle_type}", h.Get)
	})
}

// List returns every configured rate table.
// 200: JSON; 500: internal error.
func (h *RateHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list rate tables")
		return
	}
	if tables == nil {
		tables = []core.RateTable{}
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, tables)
}

// Get returns the rate table of one vehicle type.
// 200: JSON; 400: missing type; 404: not found; 500: internal error.
func (h *RateHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicleType := chi.URLParam(r, "vehicle_type")
	if vehicleType == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Vehicle Type", "Path parameter vehicle_type is required.")
		return
	}

	rt, err := h.Svc.Get(r.Context(), vehicleType)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get rate table")
		return
	}
	writeJSON(r.Context(), h.Log, w, http.StatusOK, rt)
}
