package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	analyticshandler "github.com/powerwestjava/solar-atlas/pkg/handlers/analytics"
	chathandler "github.com/powerwestjava/solar-atlas/pkg/handlers/chat"
	estimatehandler "github.com/powerwestjava/solar-atlas/pkg/handlers/estimate"
	projecthandler "github.com/powerwestjava/solar-atlas/pkg/handlers/project"
	solarmiddleware "github.com/powerwestjava/solar-atlas/pkg/server/middleware"
	"github.com/powerwestjava/solar-atlas/pkg/services/analytics"
	"github.com/powerwestjava/solar-atlas/pkg/services/project"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Guard    chathandler.Responder
	Projects project.Service
	Monitor  analytics.Monitor
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	logger := config.Dependencies.Logger

	estimateHandler := estimatehandler.NewHandler()
	chatHandler := chathandler.NewHandler(config.Dependencies.Guard)
	projectHandler := projecthandler.NewHandler(config.Dependencies.Projects)
	analyticsHandler := analyticshandler.NewHandler(config.Dependencies.Monitor)

	router := chi.NewRouter()

	router.Use(solarmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("West Java Solar Backend is live."))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/estimate", estimateHandler.Calculate)
		r.Post("/chat", chatHandler.Chat)
		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/projects/{id}/investments", projectHandler.Invest)
		r.Get("/analytics/monitoring", analyticsHandler.Monitoring)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
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
