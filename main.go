package main

import (
	"fmt"
	stdlog "log"

	"github.com/fazetdev/zimam-delivery/internal/config"
	"github.com/fazetdev/zimam-delivery/internal/database"
	"github.com/fazetdev/zimam-delivery/internal/ledger"
	"github.com/fazetdev/zimam-delivery/internal/logger"
	"github.com/fazetdev/zimam-delivery/internal/models"
	"github.com/fazetdev/zimam-delivery/internal/router"
	"github.com/fazetdev/zimam-delivery/internal/store"

	"go.uber.org/zap"
)

// snapshot keys for the two persisted collections
const (
	logbookKey = "zimam-logbook-storage"
	walletKey  = "zimam-wallet-storage"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		stdlog.Fatalf("init logger: %v", err)
	}
	defer log.Sync()

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatal("init database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	// restore both collections before anything reads them
	deliveryStore := store.New(db, log, logbookKey, func(d *models.Delivery) string { return d.ID })
	deliveryStore.Load()
	txStore := store.New(db, log, walletKey, func(t *models.Transaction) string { return t.ID })
	txStore.Load()

	logbook := ledger.NewLogbook(deliveryStore)
	wallet := ledger.NewWallet(txStore)

	r := router.Setup(cfg, log, logbook, wallet)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Info("server listening",
		zap.String("addr", addr),
		zap.Int("deliveries", deliveryStore.Len()),
		zap.Int("transactions", txStore.Len()),
	)
	if err := r.Run(addr); err != nil {
		log.Fatal("run server", zap.Error(err))
	}
}
