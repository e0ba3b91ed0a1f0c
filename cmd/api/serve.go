package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harentsoaR/dental-care-api/internal/config"
	"github.com/harentsoaR/dental-care-api/internal/handlers"
	"github.com/harentsoaR/dental-care-api/internal/routes"
	"github.com/harentsoaR/dental-care-api/internal/services"
	"github.com/harentsoaR/dental-care-api/internal/utils"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.LogSummary()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := closeStore(shutdownCtx); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}()

	if err := seedAdmin(ctx, repos.Users, cfg.AdminEmail); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	var provider services.PaymentProvider
	if cfg.PaymentSecret != "" {
		provider = services.NewStripeProvider(cfg.PaymentSecret)
	}
	paymentSvc := services.NewPaymentService(provider, repos.Payments, cfg.PaymentCurrency)
	tokens := utils.NewTokenService(cfg.JWTSecret)

	h := handlers.NewHandler(repos, tokens, paymentSvc)
	router := routes.NewRouter(h, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
