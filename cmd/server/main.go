package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/accounts"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/api"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/config"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/events/kafka"
	eventsmemory "github.com/sheikh-saqib/exchange-compliance-ledger/internal/events/memory"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/exchange"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/interfaces"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/logger"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/storage/memory"
	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/storage/postgres"
)

type stores interface {
	interfaces.LedgerStore
	interfaces.PropertyStore
	interfaces.TaxAccountStore
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Setup(logger.Config{Level: cfg.LogLevel, Output: os.Stdout})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store stores = memory.NewStore()
	if cfg.DatabaseDSN != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Error("postgres.open_failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("postgres.migrate_failed", "error", err)
			os.Exit(1)
		}
		store = postgres.NewPostgresStore(db)
		log.Info("storage.postgres")
	} else {
		log.Info("storage.memory")
	}

	var publisher interfaces.EventPublisher = eventsmemory.NewPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
		log.Info("events.kafka", "brokers", cfg.KafkaBrokers)
	}

	exchangeService := exchange.NewService(store, store, store, publisher, log)
	provisioner := accounts.NewProvisioner(store, publisher, log)
	handler := api.NewHandler(exchangeService, provisioner, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("http.listening", "addr", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http.serve_failed", "error", err)
		os.Exit(1)
	}
}
