package main

import (
	"context"
	"errors"
	"fmt"
	gologger "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shopify/sarama"
	"github.com/companieshouse/chs.go/log"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/pat"
	"github.com/joho/godotenv"
	"github.com/zap-shift/parcel-delivery-api/config"
	"github.com/zap-shift/parcel-delivery-api/dao"
	"github.com/zap-shift/parcel-delivery-api/events"
	"github.com/zap-shift/parcel-delivery-api/handlers"
	"github.com/zap-shift/parcel-delivery-api/identity"
	"github.com/zap-shift/parcel-delivery-api/keys"
	"github.com/zap-shift/parcel-delivery-api/payment"
	"github.com/zap-shift/parcel-delivery-api/service"
)

const startupTimeout = 30 * time.Second

func main() {
	log.Namespace = "parcel-delivery-api"

	// Push the Sarama logs into our custom writer
	sarama.Logger = gologger.New(&log.Writer{}, "[Sarama] ", gologger.LstdFlags)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Error(fmt.Errorf("error loading .env file: %s", err), nil)
	}

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err), nil)
		os.Exit(1)
	}

	log.Info("intialising parcel-delivery-api service...", log.Data{keys.AppName: cfg.Namespace()})

	if err = run(cfg); err != nil {
		log.Error(fmt.Errorf("%s. Exiting", err), nil)
		os.Exit(1)
	}

	log.Info("Application successfully shutdown")
}

func run(cfg *config.Config) error {

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	store, err := dao.New(startupCtx, cfg)
	if err != nil {
		return fmt.Errorf("error initialising mongodb: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		store.Shutdown(ctx)
	}()

	checkoutSettings, err := config.GetCheckoutSettings(cfg.CheckoutSettingsFile)
	if err != nil {
		return fmt.Errorf("error loading checkout settings: %w", err)
	}
	gateway := payment.NewStripeGateway(cfg.StripeSecret, cfg.SiteURL, checkoutSettings)

	// the auth client keeps this context for refreshing its credentials
	verifier, err := identity.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentialsFile)
	if err != nil {
		return err
	}

	publisher, err := events.New(cfg)
	if err != nil {
		return fmt.Errorf("error initialising parcel-paid publisher: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error(fmt.Errorf("error closing producer: %s", err))
		}
	}()

	svc := service.New(cfg, store, gateway, publisher)

	router := pat.New()
	handlers.Init(router, svc, verifier, cfg.IdentityTimeout(), store.Ping)

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Authorization", "Content-Type", handlers.RequestIDHeader}),
		gorillahandlers.ExposedHeaders([]string{handlers.RequestIDHeader}),
	)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           cors(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", log.Data{keys.BindAddr: server.Addr})
		serverErrors <- server.ListenAndServe()
	}()

	return waitForServiceClose(server, serverErrors, cfg.ShutdownTimeout())
}

// waitForServiceClose blocks until a close signal arrives or the server
// stops by itself, then gives in-flight requests the grace period to finish.
func waitForServiceClose(server *http.Server, serverErrors <-chan error, grace time.Duration) error {

	notificationChannel := make(chan os.Signal, 1)
	signal.Notify(notificationChannel, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(notificationChannel)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error starting HTTP server: %w", err)
	case <-notificationChannel:
		log.Info("Close signal received, shutting down HTTP server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}

	return nil
}
