package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retrobank/backoffice/internal/config"
	"github.com/retrobank/backoffice/internal/handler"
	"github.com/retrobank/backoffice/internal/ident"
	"github.com/retrobank/backoffice/internal/logging"
	"github.com/retrobank/backoffice/internal/middleware"
	"github.com/retrobank/backoffice/internal/repository"
	"github.com/retrobank/backoffice/internal/service"
)

type snapshotStore interface {
	repository.Store
	Ping(ctx context.Context) error
	Close() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("backoffice-api", cfg.LogLevel, cfg.AppEnv)

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open snapshot store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// First load seeds the snapshot on a fresh store.
	if _, err := store.Load(ctx); err != nil {
		slog.Error("failed to load initial snapshot", "error", err)
		os.Exit(1)
	}

	bank := service.NewBank(store, ident.NewCryptoGenerator(), service.Config{
		LoanInterestRatePct: decimal.NewFromFloat(cfg.LoanInterestRatePct),
		CardDailyLimit:      decimal.NewFromFloat(cfg.CardDailyLimit),
	})

	jwtExpiry := time.Duration(cfg.JWTExpiryMinutes) * time.Minute

	authHandler := handler.NewAuthHandler(bank, cfg.JWTSecret, jwtExpiry)
	accountHandler := handler.NewAccountHandler(bank)
	ledgerHandler := handler.NewLedgerHandler(bank)
	loanHandler := handler.NewLoanHandler(bank)
	chequeHandler := handler.NewChequeHandler(bank)
	cardHandler := handler.NewCardHandler(bank)
	adminHandler := handler.NewAdminHandler(bank)
	healthHandler := handler.NewHealthHandler(store)

	public := func(h http.HandlerFunc) http.Handler {
		return middleware.Recovery(middleware.Tracing(middleware.Logging(h)))
	}
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.Recovery(middleware.Tracing(middleware.Auth(cfg.JWTSecret)(middleware.Logging(h))))
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return middleware.Recovery(middleware.Tracing(middleware.Auth(cfg.JWTSecret)(middleware.RequireAdmin(middleware.Logging(h)))))
	}

	mux := http.NewServeMux()

	mux.Handle("GET /health", public(healthHandler.Liveness))
	mux.Handle("GET /health/ready", public(healthHandler.Readiness))

	mux.Handle("POST /api/v1/auth/login", public(authHandler.Login))
	mux.Handle("POST /api/v1/auth/register", public(authHandler.Register))
	mux.Handle("POST /api/v1/auth/reset-password", public(authHandler.ResetPassword))

	mux.Handle("GET /api/v1/me", authed(accountHandler.Me))
	mux.Handle("POST /api/v1/ledger/deposit", authed(ledgerHandler.Deposit))
	mux.Handle("POST /api/v1/ledger/withdraw", authed(ledgerHandler.Withdraw))
	mux.Handle("POST /api/v1/ledger/transfer", authed(ledgerHandler.Transfer))
	mux.Handle("POST /api/v1/loans", authed(loanHandler.Apply))
	mux.Handle("POST /api/v1/cheques", authed(chequeHandler.Issue))
	mux.Handle("POST /api/v1/cheques/book", authed(chequeHandler.RequestBook))
	mux.Handle("POST /api/v1/cards", authed(cardHandler.Issue))

	// ATM routes authenticate with card number and PIN, not a bearer token.
	mux.Handle("POST /api/v1/atm/withdraw", public(cardHandler.ATMWithdraw))
	mux.Handle("POST /api/v1/atm/verify-pin", public(cardHandler.VerifyPIN))

	mux.Handle("GET /api/v1/admin/accounts", admin(adminHandler.ListAccounts))
	mux.Handle("POST /api/v1/admin/actions", admin(adminHandler.Action))
	mux.Handle("POST /api/v1/admin/adjust-balance", admin(adminHandler.AdjustBalance))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (snapshotStore, error) {
	switch cfg.StoreDriver {
	case "postgres":
		return repository.NewPostgresStore(ctx, cfg.StoreDSN)
	default:
		return repository.NewSQLiteStore(cfg.StoreDSN)
	}
}
