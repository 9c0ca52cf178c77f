package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/insure-atlas/pkg/handlers/catalog"
	"github.com/de-tools/insure-atlas/pkg/handlers/reports"
	sessionhandlers "github.com/de-tools/insure-atlas/pkg/handlers/session"
	atlasmiddleware "github.com/de-tools/insure-atlas/pkg/server/middleware"
	"github.com/de-tools/insure-atlas/pkg/services/dashboard"
	"github.com/de-tools/insure-atlas/pkg/services/session"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Provider provider.Provider
	Reports  dashboard.Service
	Exporter reports.Exporter
	Charts   reports.ChartRenderer
	Session  session.State
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) http.Handler {
	deps := config.Dependencies
	reportsHandler := reports.NewHandler(deps.Reports, deps.Provider, deps.Exporter, deps.Charts)
	catalogHandler := catalog.NewHandler(deps.Provider)
	sessionHandler := sessionhandlers.NewHandler(deps.Session)

	router := chi.NewRouter()

	router.Use(atlasmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/session", sessionHandler.GetSession)
		r.Post("/session", sessionHandler.SignIn)
		r.Delete("/session", sessionHandler.SignOut)

		r.Group(func(r chi.Router) {
			r.Use(atlasmiddleware.SessionGate(deps.Session))

			r.Get("/dashboard/stats", catalogHandler.GetStats)

			r.Get("/reports/{type}/{range}", reportsHandler.GetReport)
			r.Get("/reports/{type}/{range}/chart.png", reportsHandler.GetChart)
			r.Post("/reports/{type}/{range}/export", reportsHandler.Export)
			r.Get("/exports/status", reportsHandler.ExportStatus)

			r.Get("/breakdowns/{name}", reportsHandler.GetBreakdown)
			r.Get("/breakdowns/{name}/chart.png", reportsHandler.GetBreakdownChart)

			r.Get("/clients", catalogHandler.ListClients)
			r.Get("/clients/{id}", catalogHandler.GetClient)
			r.Get("/policies", catalogHandler.ListPolicies)
			r.Get("/policies/{id}", catalogHandler.GetPolicy)
			r.Get("/claims", catalogHandler.ListClaims)
			r.Get("/claims/{id}", catalogHandler.GetClaim)
			r.Get("/payments", catalogHandler.ListPayments)
			r.Get("/payments/{id}", catalogHandler.GetPayment)
		})
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests, including a running export, a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
