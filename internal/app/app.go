// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajdhanitech/tuition-backend/internal/adapter/postgres"
	accountrepo "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres/account"
	inquiryrepo "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres/inquiry"
	profilerepo "github.com/rajdhanitech/tuition-backend/internal/adapter/postgres/teacherprofile"
	authpkg "github.com/rajdhanitech/tuition-backend/internal/auth"
	"github.com/rajdhanitech/tuition-backend/internal/config"
	"github.com/rajdhanitech/tuition-backend/internal/notify"
	authsvc "github.com/rajdhanitech/tuition-backend/internal/service/auth"
	inquirysvc "github.com/rajdhanitech/tuition-backend/internal/service/inquiry"
	teachersvc "github.com/rajdhanitech/tuition-backend/internal/service/teacher"
	"github.com/rajdhanitech/tuition-backend/internal/transport/middleware"
	"github.com/rajdhanitech/tuition-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the services and serves HTTP until the context is
// cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	accounts := accountrepo.New(pool)
	inquiries := inquiryrepo.New(pool)
	profiles := profilerepo.New(pool)

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	gateway := notify.NewGateway(logger, buildChannels(cfg.Notify, logger)...)

	authService := authsvc.NewService(logger, accounts, jwtManager, cfg.Auth)
	inquiryService := inquirysvc.NewService(logger, inquiries, accounts, txManager, gateway)
	teacherService := teachersvc.NewService(logger, profiles, accounts)

	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Auth:    rest.NewAuthHandler(authService, logger),
		Inquiry: rest.NewInquiryHandler(inquiryService, logger),
		Teacher: rest.NewTeacherHandler(teacherService, logger),
		Admin:   rest.NewAdminHandler(teacherService, logger),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Logger(logger),
	)
	var handler http.Handler = chain(mux)
	if cfg.Server.RateLimitPerMinute > 0 {
		handler = rateLimiter.Limit(cfg.Server.RateLimitPerMinute)(handler)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	// Let in-flight notifications drain before the pool closes.
	gateway.Wait()

	logger.Info("stopped")
	return nil
}

// buildChannels assembles the notification channels enabled by config.
// With every real channel disabled the gateway still logs notifications.
func buildChannels(cfg config.NotifyConfig, logger *slog.Logger) []notify.Channel {
	var channels []notify.Channel

	if cfg.Email.Enabled {
		channels = append(channels, notify.NewEmailChannel(
			cfg.Email.APIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.AdminEmail))
	}
	if cfg.WhatsApp.Enabled {
		channels = append(channels, notify.NewWhatsAppChannel(
			cfg.WhatsApp.AccountSID, cfg.WhatsApp.AuthToken, cfg.WhatsApp.From, cfg.WhatsApp.AdminNumber))
	}
	if len(channels) == 0 {
		channels = append(channels, notify.NewLogChannel(logger))
	}

	return channels
}
