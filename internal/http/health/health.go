package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Pinger is implemented by both store clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New builds a health check HTTP handler with liveness and readiness endpoints.
// Readiness reports the configured backend name.
func New(log *slog.Logger, backend string, p Pinger, opTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Liveness: process is up
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Readiness: the store answers within opTimeout
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := p.Ping(ctx); err != nil {
			if log != nil {
				log.WarnContext(ctx, "readiness failed", "backend", backend, "err", err)
			}
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready: " + backend))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready: " + backend))
	})

	return r
}
