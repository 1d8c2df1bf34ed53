package main

import (
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casarural/internal/catalog"
	"casarural/internal/cli"
	"casarural/internal/config"
	"casarural/internal/domain"
	apperrors "casarural/internal/errors"
	"casarural/internal/infrastructure/logger"
	"casarural/internal/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	store := snapshot.NewStore(cfg.Snapshot.Path, zapLogger)

	cat := catalog.New(domain.House{
		ID:      uuid.New(),
		Name:    cfg.House.Name,
		Address: cfg.House.Address,
		Phone:   cfg.House.Phone,
	}, zapLogger)

	if data, err := store.Load(); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			zapLogger.Info("no snapshot found, starting empty", zap.String("path", cfg.Snapshot.Path))
		} else {
			zapLogger.Fatal("loading snapshot", zap.Error(err))
		}
	} else {
		cat.Restore(data.House, data.Rooms, data.Clients, data.Reservations)
	}

	cli.New(cat, store, zapLogger).Run()
}
