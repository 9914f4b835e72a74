package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"insureco/internal/claimevent"
	claimeventhandler "insureco/internal/claimevent/handler"
	"insureco/internal/insurance"
	insurancehandler "insureco/internal/insurance/handler"
	"insureco/internal/insurancetype"
	insurancetypehandler "insureco/internal/insurancetype/handler"
	"insureco/internal/insured"
	insuredhandler "insureco/internal/insured/handler"
	"insureco/internal/platform/config"
	"insureco/internal/platform/httpserver"
	"insureco/internal/platform/logger"
	"insureco/internal/platform/metrics"
	"insureco/internal/storage/sqlite"
	httptransport "insureco/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the resource services.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	m := metrics.New()

	insuredService := insured.NewService(insured.NewStore(db), log, m)
	typeService := insurancetype.NewService(insurancetype.NewStore(db), log)
	policyService := insurance.NewService(insurance.NewStore(db), log, m)
	eventService := claimevent.NewService(claimevent.NewStore(db), log, m)

	router := httptransport.NewRouter(cfg.BasePath, log, m,
		insuredhandler.New(insuredService, log),
		insurancetypehandler.New(typeService, log),
		insurancehandler.New(policyService, log),
		claimeventhandler.New(eventService, log),
	)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting insureco API", "addr", cfg.Addr, "db", cfg.DBPath, "base_path", cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
