package app

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/harborfin/rollover/internal/portal/http"
	"github.com/harborfin/rollover/internal/portal/identity/directory"
	"github.com/harborfin/rollover/internal/portal/mail"
	"github.com/harborfin/rollover/internal/portal/service"
	"github.com/harborfin/rollover/internal/portal/store"
	"github.com/harborfin/rollover/internal/portal/store/drivers/sqlite"
	"github.com/harborfin/rollover/pkg/cryptox"
	"github.com/harborfin/rollover/pkg/jwtx"
	"github.com/harborfin/rollover/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	keys     *jwtx.KeySet
	signer   jwtx.Signer
	verifier jwtx.Verifier
	mailer   mail.Mailer

	// Services
	guard             *service.Guard
	sessionService    *service.SessionService
	inviteService     *service.InviteService
	membershipService *service.MembershipService
	sharingService    *service.SharingService

	// HTTP server
	server *http.Server
	router *httpapi.Router

	cleanupStop chan struct{}
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		cleanupStop: make(chan struct{}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSessionKeys(); err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	go app.runInviteCleanup()

	app.logger.Info("portal service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portal service...")

	close(app.cleanupStop)

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("portal service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initSessionKeys builds the Ed25519 signer and the verifier key set. With
// a configured seed every replica signs with the same key; otherwise the
// key is ephemeral and sessions end on restart.
func (app *Application) initSessionKeys() error {
	var (
		signer *jwtx.EdDSASigner
		err    error
	)
	if app.cfg.SessionKeySeed != "" {
		seed, decErr := hex.DecodeString(app.cfg.SessionKeySeed)
		if decErr != nil {
			return fmt.Errorf("PORTAL_SESSION_SEED is not valid hex: %w", decErr)
		}
		signer, err = jwtx.NewSignerFromSeed("portal-1", seed)
	} else {
		signer, err = jwtx.NewEphemeralSigner("portal-1")
		if err == nil {
			app.logger.Warn("using ephemeral session key; sessions will not survive a restart")
		}
	}
	if err != nil {
		return err
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return err
	}

	app.signer = signer
	app.keys = keys
	app.verifier = jwtx.NewVerifier(keys, app.cfg.Issuer)
	return nil
}

// initMailer picks the invitation transport: SMTP when configured, the
// logging mailer otherwise.
func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.logger.Info("no SMTP host configured, invitations will be logged only")
		app.mailer = mail.NewDevMailer()
		return
	}

	app.mailer = mail.NewSMTPMailer(mail.SMTPConfig{
		Host:      app.cfg.SMTPHost,
		Port:      app.cfg.SMTPPort,
		Username:  app.cfg.SMTPUsername,
		Password:  app.cfg.SMTPPassword,
		From:      app.cfg.SMTPFrom,
		PortalURL: app.cfg.PortalURL,
	})
	app.logger.Info("SMTP mailer configured", "host", app.cfg.SMTPHost)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.guard = &service.Guard{Store: app.db}
	app.membershipService = &service.MembershipService{Store: app.db}
	app.sharingService = &service.SharingService{Store: app.db}

	app.sessionService = &service.SessionService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.inviteService = &service.InviteService{
		Store:    app.db,
		Identity: directory.New(app.db, app.mailer),
		Members:  app.membershipService,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		app.cfg.AdminToken,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.Guard = app.guard
	router.SessionService = app.sessionService
	router.InviteService = app.inviteService
	router.MembershipService = app.membershipService
	router.SharingService = app.sharingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// runInviteCleanup periodically deletes expired invitation tokens so the
// invites table does not grow without bound.
func (app *Application) runInviteCleanup() {
	ticker := time.NewTicker(app.cfg.InviteCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := app.db.Invites().DeleteExpired(ctx, time.Now().UTC())
			cancel()
			if err != nil {
				app.logger.Error("invite cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Info("expired invites removed", "count", n)
			}
		case <-app.cleanupStop:
			return
		}
	}
}
