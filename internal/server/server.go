// Package server exposes the show browser over HTTP: the page, its
// fragment endpoints and a small JSON API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/hlog"

	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/models"
	"github.com/Belphemur/ShowBrowser/v2/internal/panel"
	"github.com/Belphemur/ShowBrowser/v2/internal/view"
)

// Catalog is the subset of the TVMaze client the server reads from
type Catalog interface {
	SearchShows(ctx context.Context, query string) []models.Show
	GetEpisodes(ctx context.Context, showID int) []models.Episode
	GetGenres(ctx context.Context, showID int) []string
}

// Server serves the page and API
type Server struct {
	cfg        *config.Config
	catalog    Catalog
	panels     *panel.Controller
	renderer   *view.Renderer
	router     chi.Router
	httpServer *http.Server
}

// New wires the router around the given catalog and panel controller
func New(cfg *config.Config, catalog Catalog, panels *panel.Controller, renderer *view.Renderer) *Server {
	s := &Server{
		cfg:      cfg,
		catalog:  catalog,
		panels:   panels,
		renderer: renderer,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(config.GetLogger()))
	r.Use(accessLog)
	r.Use(middleware.Recoverer)
	r.Use(routeMetrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", s.handlePage)
	r.Get("/shows", s.handleShows)
	r.Post("/panels/{kind}/toggle", s.handleToggle)

	r.Route("/api/v1", func(r chi.Router) {
		origins := s.cfg.CORS.AllowedOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/shows", s.handleAPISearch)
		r.Get("/shows/{id}/episodes", s.handleAPIEpisodes)
		r.Get("/shows/{id}/genres", s.handleAPIGenres)
	})

	return r
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address until Shutdown is called
func (s *Server) Start() error {
	logger := config.GetLogger()
	logger.Info().Str("address", s.httpServer.Addr).Msg("Starting HTTP server")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
