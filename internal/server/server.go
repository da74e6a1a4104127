// Package server runs the HTTP service and its background work.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/gradplan/internal/bootstrap"
	"github.com/yigit/gradplan/internal/config"
	"github.com/yigit/gradplan/internal/pkg/helpers"
	"github.com/yigit/gradplan/internal/pkg/metrics"
	"github.com/yigit/gradplan/internal/rag"
)

// tokenCleanupInterval is how often expired refresh tokens are purged
const tokenCleanupInterval = time.Hour

// TokenCleaner deletes expired and long-revoked refresh tokens
type TokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	dbPool   *pgxpool.Pool
	pipeline *rag.Pipeline
	tokens   TokenCleaner
	logger   zerolog.Logger
	http     *http.Server

	background context.Context
	stop       context.CancelFunc
	wg         sync.WaitGroup
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	background, stop := context.WithCancel(context.Background())

	dbPool, err := bootstrap.SetupDatabase(background, cfg, lgr)
	if err != nil {
		stop()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	cat := bootstrap.LoadCatalog(cfg)
	m := metrics.New()
	pipeline := bootstrap.NewPipeline(background, cfg, cat, m)
	deps := bootstrap.BuildDependencies(cfg, dbPool, cat, pipeline, m, lgr)

	return &Server{
		config:     cfg,
		router:     bootstrap.SetupRouter(cfg, deps, lgr),
		dbPool:     dbPool,
		pipeline:   pipeline,
		tokens:     deps.Repos.TokenRepository,
		logger:     lgr,
		background: background,
		stop:       stop,
	}, nil
}

// startBackground builds the retrieval index and schedules token cleanup.
// Requests are served while the index is built; until then plans come from
// the deterministic assembler.
func (s *Server) startBackground() {
	s.wg.Add(2)

	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(s.background, helpers.ParseDuration(s.config.LLM.IndexTimeout, 5*time.Minute))
		defer cancel()
		state := s.pipeline.Initialize(ctx)
		s.logger.Info().Str("state", string(state)).Msg("RAG pipeline initialization finished")
	}()

	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(tokenCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.background.Done():
				return
			case <-ticker.C:
				n, err := s.tokens.CleanupExpiredTokens(s.background)
				if err != nil {
					s.logger.Error().Err(err).Msg("Refresh token cleanup failed")
					continue
				}
				s.logger.Debug().Int64("deleted", n).Msg("Refresh tokens cleaned up")
			}
		}
	}()
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: helpers.ParseDuration(s.config.LLM.RequestTimeout, time.Minute) + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.startBackground()

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.Shutdown(context.Background())
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	s.stop()
	s.wg.Wait()

	if s.dbPool != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.dbPool.Close()
		s.logger.Info().Msg("Database connection pool closed.")
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
