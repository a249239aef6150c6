package web

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"trendboard/internal/usecase"
)

type Server struct {
	router  *http.ServeMux
	server  *http.Server
	market  *usecase.MarketService
	predict *usecase.PredictService
	logger  *zap.Logger
}

func NewServer(
	port int,
	market *usecase.MarketService,
	predict *usecase.PredictService,
	logger *zap.Logger,
) *Server {
	s := &Server{
		router:  http.NewServeMux(),
		market:  market,
		predict: predict,
		logger:  logger,
	}
	s.routes()
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.router,
	}
	return s
}

func (s *Server) routes() {
	// Dashboard (full page render per interaction)
	s.router.HandleFunc("GET /", s.handleDashboard)

	// Watchlist rows partial, polled by the page script
	s.router.HandleFunc("GET /watchlist", s.handleWatchlist)

	// Chart data
	s.router.HandleFunc("GET /api/chart", s.handleChartJSON)

	// Status
	s.router.HandleFunc("GET /status", s.handleStatus)
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
