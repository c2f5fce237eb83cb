// internal/api/server.go
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unihub-api/internal/common/config"
	"unihub-api/internal/common/logger"
	"unihub-api/internal/common/observability"
)

// Server is the HTTP front of the service.
type Server struct {
	router *mux.Router
	server *http.Server
	logger logger.Logger
}

func NewServer(cfg config.ServerConfig, handlers *Handlers, log logger.Logger, obs *observability.Observability) *Server {
	router := mux.NewRouter()

	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware(log, obs))
	router.Use(timeoutMiddleware(time.Duration(cfg.RequestTimeout) * time.Millisecond))

	// Operational endpoints stay outside the JSON API subtree
	router.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", handlers.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(jsonContentTypeMiddleware)

	api.HandleFunc("/admission-chance", handlers.AdmissionChance).Methods(http.MethodPost)
	api.HandleFunc("/match", handlers.Match).Methods(http.MethodPost)
	api.HandleFunc("/chat", handlers.Chat).Methods(http.MethodPost)

	api.HandleFunc("/universities", handlers.Universities).Methods(http.MethodGet)
	api.HandleFunc("/universities/{id}", handlers.University).Methods(http.MethodGet)
	api.HandleFunc("/programs/{id}", handlers.Program).Methods(http.MethodGet)

	api.HandleFunc("/portfolio/{userId}", handlers.GetPortfolio).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/{userId}", handlers.SavePortfolio).Methods(http.MethodPut)
	api.HandleFunc("/portfolio/{userId}", handlers.DeletePortfolio).Methods(http.MethodDelete)

	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)

	return &Server{
		router: router,
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Millisecond,
			WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Millisecond,
			IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Millisecond,
		},
		logger: log.WithFields(map[string]interface{}{"component": "http-server"}),
	}
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() *mux.Router {
	return s.router
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.server.Addr,
	})
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
