package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/pkg/problem"
)

func writeError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error, detail string) {
	var inel *core.IneligibleError

	switch {
	case errors.As(err, &inel):
		log.WarnContext(ctx, "request refused", "reason", inel.Reason)
		problem.WriteProblem(w, problem.Problem{
			Title:  "Not Eligible",
			Status: http.StatusConflict,
			Detail: detail,
			Reason: inel.Reason,
		})

	case errors.Is(err, core.ErrCannotQuote):
		log.WarnContext(ctx, "cannot quote", "err", err)
		problem.Write(w, http.StatusNotFound, "Cannot Quote", detail)

	case errors.Is(err, core.ErrNotFound):
		log.WarnContext(ctx, "resource not found", "err", err)
		problem.Write(w, http.StatusNotFound, "Not Found", detail)

	case errors.Is(err, core.ErrValidation):
		log.WarnContext(ctx, "validation failed", "err", err)
		problem.Write(w, http.StatusBadRequest, "Validation Error", detail)

	case errors.Is(err, core.ErrConflict):
		log.WarnContext(ctx, "resource conflict", "err", err)
		problem.Write(w, http.StatusConflict, "Conflict", detail)

	case errors.Is(err, core.ErrUnauthorized):
		log.WarnContext(ctx, "unauthorized request", "err", err)
		problem.Write(w, http.StatusUnauthorized, "Unauthorized", detail)

	case errors.Is(err, core.ErrForbidden):
		log.WarnContext(ctx, "forbidden operation", "err", err)
		problem.Write(w, http.StatusForbidden, "Forbidden", detail)

	case errors.Is(err, context.DeadlineExceeded):
		log.ErrorContext(ctx, "operation timeout", "err", err)
		problem.Write(w, http.StatusGatewayTimeout, "Timeout", "Operation took too long.")

	default:
		log.ErrorContext(ctx, "internal server error", "err", err)
		problem.Write(w, http.StatusInternalServerError, "Internal Server Error", detail)
	}
}

func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorContext(ctx, "failed to encode response", "err", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pageParams reads limit/offset, ignoring malformed values, and clamps them
// the way the services do so the echoed page is the one served.
func pageParams(r *http.Request) (limit, offset int) {
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return core.ClampPage(limit, offset)
}

func policyFilter(r *http.Request) core.PolicyFilter {
	filter := core.PolicyFilter{
		HolderEmail: r.URL.Query().Get("holder_email"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = core.PolicyStatus(status)
	}
	return filter
}

type page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func newPage[T any](items []T, total int64, limit, offset int) page[T] {
	// Return empty array instead of null
	if items == nil {
		items = []T{}
	}
	return page[T]{Items: items, Total: total, Limit: limit, Offset: offset}
}
