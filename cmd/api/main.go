// @title WE MET studio API
// @version 1.0
// @description Cart, workshop calendar, booking and notification state for the WE MET ceramics studio storefront.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token from POST /sessions, as "Bearer <token>".
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wemetstudio/config"
	_ "wemetstudio/docs"
	"wemetstudio/internal/adapters/auth"
	"wemetstudio/internal/adapters/catalog"
	"wemetstudio/internal/adapters/email"
	deliveryhttp "wemetstudio/internal/delivery/http"
	"wemetstudio/internal/delivery/http/controllers"
	"wemetstudio/internal/delivery/http/middleware"
	"wemetstudio/internal/domain"
	"wemetstudio/internal/i18n"
	"wemetstudio/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		log.Fatal(err)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := services.NewRealClock()
	translator := i18n.NewTranslator()

	provider, err := newCatalogProvider(cfg)
	if err != nil {
		return err
	}
	cat := services.NewCatalog()
	loader := services.NewCatalogLoader(provider, cat, cfg.StudioLocation, logger, cfg.CatalogTimeout)
	loader.Load(ctx)
	defer loader.Cancel()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.AWSRegion,
			AccessKeyID:        cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.InsecureSkipVerify,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("email templates: %w", err)
	}
	sender := services.NewBookingEmailService(mailer, renderer, cfg.Mail.StudioAddress, cfg.StudioLocation, logger)
	booking := services.NewBookingService(sender, translator, clock, logger)

	sessions := services.NewSessionRegistry(cat, translator, clock, services.SessionConfig{
		TTL:                  cfg.SessionTTL,
		SweepInterval:        cfg.SessionSweepInterval,
		DefaultDate:          cfg.CalendarDefaultDate,
		NotificationDuration: cfg.NotificationDuration,
	}, logger)
	go sessions.Run(ctx)

	tokens := auth.NewSessionTokens(cfg.SessionSecret)
	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Session:      controllers.NewSessionController(logger, sessions, tokens, cfg.SessionTTL),
		Catalog:      controllers.NewCatalogController(logger, cat, loader, translator),
		Cart:         controllers.NewCartController(logger, cat, translator),
		Calendar:     controllers.NewCalendarController(logger, cat, booking, translator),
		Notification: controllers.NewNotificationController(logger, cfg.CORSAllowedOrigins),
	}, middleware.RequireSession(tokens, sessions, logger))

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", srv.Addr, "env", cfg.Environment, "catalog_source", cfg.CatalogSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("HTTP server stopped")
	return nil
}

func newCatalogProvider(cfg *config.Config) (domain.CatalogProvider, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceStatic:
		return catalog.NewStaticProvider(cfg.StudioLocation, catalog.DefaultDelays), nil
	case config.CatalogSourceHTTP:
		return catalog.NewHTTPProvider(&http.Client{Timeout: cfg.CatalogTimeout}, cfg.CatalogURL), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}
