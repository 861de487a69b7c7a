package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/swag"

	"github.com/MrKriegler/go-motor-portal/docs"
	"github.com/MrKriegler/go-motor-portal/internal/core"
	transporthttp "github.com/MrKriegler/go-motor-portal/internal/http"
	"github.com/MrKriegler/go-motor-portal/internal/http/handlers"
	"github.com/MrKriegler/go-motor-portal/internal/http/health"
	"github.com/MrKriegler/go-motor-portal/internal/jobs"
	"github.com/MrKriegler/go-motor-portal/internal/middleware"
	"github.com/MrKriegler/go-motor-portal/internal/platform/config"
	"github.com/MrKriegler/go-motor-portal/internal/platform/logging"
	"github.com/MrKriegler/go-motor-portal/internal/store"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := store.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open store", "db_type", cfg.DBType, "err", err)
		os.Exit(1)
	}
	defer backend.Close(context.Background())
	log.Info("store ready", "db_type", backend.Name)

	// ---- Services ----
	numbers := backend.NumberAllocator(cfg, log)
	quoteSvc := core.NewQuoteService(backend.Rates, backend.Quotes, numbers)
	rateSvc := core.NewRateService(backend.Rates)
	policySvc := core.NewPolicyService(backend.Policies)
	paymentSvc := core.NewPaymentService(backend.Policies, backend.Installments, cfg.Location)
	claimSvc := core.NewClaimService(backend.Policies, backend.Claims)

	// ---- Background jobs ----
	workers := []jobs.Worker{
		jobs.NewOverdueWorker(policySvc, paymentSvc, time.Duration(cfg.WorkerIntervalSec)*time.Second, log),
	}
	for _, w := range workers {
		log.Info("starting worker", "worker", w.Name())
		go w.Start(ctx)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPM, time.Minute)
	limiter.StartWithContext(ctx)

	// ---- Setup router (Chi) ----
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
	r.Use(limiter.Middleware)
	r.Use(middleware.APIKey(cfg.APIKey))

	opTimeout := time.Duration(cfg.MongoOpTimeoutMs) * time.Millisecond
	probes := health.New(log, backend.Name, backend, max(opTimeout, time.Second))
	r.Handle("/health", probes)
	r.Handle("/readyz", probes)

	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})

	r.Mount("/api/v1", transporthttp.NewRouter(transporthttp.Deps{
		Mounts: []handlers.Mountable{
			handlers.NewRateHandler(rateSvc, log),
			handlers.NewQuoteHandler(quoteSvc, log),
			handlers.NewCommissionHandler(log),
			handlers.NewPolicyHandler(policySvc, log),
			handlers.NewPaymentHandler(paymentSvc, log),
			handlers.NewClaimHandler(claimSvc, log),
		},
	}))

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	go func() {
		log.Info("server listening", "addr", addr, "env", cfg.Env, "quote_numbering", cfg.QuoteNumbering)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
}
