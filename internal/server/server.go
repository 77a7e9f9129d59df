// Package server exposes the store to the view layer as read-only JSON
// snapshots. It computes nothing itself beyond the derived-metric
// transforms; all data originates from the backend via the poller.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/config"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/store"
)

const version = "1.0.0"

type Server struct {
	config     *config.Config
	httpServer *http.Server
	handler    http.Handler
	store      *store.Store
	logger     *zap.Logger
	startTime  time.Time
}

func NewServer(cfg *config.Config, st *store.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		config:    cfg,
		store:     st,
		logger:    logger,
		startTime: time.Now(),
	}

	s.setupRouter()

	return s
}

func (s *Server) setupRouter() {
	r := mux.NewRouter()

	// Global middleware
	r.Use(LoggingMiddleware(s.logger))
	r.Use(RecoveryMiddleware(s.logger))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/chains", s.handleChains).Methods("GET")
	api.HandleFunc("/chains/{id}", s.handleChain).Methods("GET")
	api.HandleFunc("/chains/{id}/stake", s.handleStakeDistribution).Methods("GET")
	api.HandleFunc("/chains/{id}/score", s.handleChainScore).Methods("GET")
	api.HandleFunc("/chains/{id}/tps/history", s.handleChainTPSHistory).Methods("GET")

	api.HandleFunc("/tvl/history", s.handleTVLHistory).Methods("GET")
	api.HandleFunc("/tvl/health", s.handleTVLHealth).Methods("GET")
	api.HandleFunc("/tps/network/latest", s.handleNetworkTPS).Methods("GET")
	api.HandleFunc("/tps/network/history", s.handleNetworkTPSHistory).Methods("GET")
	api.HandleFunc("/teleporter/messages", s.handleTeleporter).Methods("GET")

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	// CORS wraps the whole router so preflight requests are answered even
	// for routes registered GET-only.
	s.handler = CORSMiddleware(s.config.Server.AllowedOrigins)(r)
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("snapshot server starting", zap.String("addr", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down snapshot server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.handler
}
