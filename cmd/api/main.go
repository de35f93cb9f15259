package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Emacore17/adottaungatto-it-sub001/app"
	"github.com/Emacore17/adottaungatto-it-sub001/broker"
	"github.com/Emacore17/adottaungatto-it-sub001/config"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	_ "github.com/Emacore17/adottaungatto-it-sub001/swagger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title						Adotta un gatto search API
// @version					    1.0
// @description				    Location scoped listing search with geographic fallback
// @BasePath					/
// @schemes					    https http
// @securityDefinitions.apiKey	ApiKeyAuth
// @in							header
// @name						X-Api-Key
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Logger().Warn("could not read .env", zap.Error(err))
	}
	cfg := config.Load()

	kafkaProducer, err := broker.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		log.Logger().Warn("failed to init kafka producer, listing events disabled", zap.Error(err))
	}

	application, err := app.New(context.Background(), cfg, kafkaProducer)
	if err != nil {
		log.Logger().Fatal("failed to init application", zap.Error(err))
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-c
		log.Logger().Info("application gracefully shutting down..")
		if err := application.Shutdown(); err != nil {
			log.Logger().Error("shutdown failed", zap.Error(err))
		}
	}()

	if err := application.Listen(); err != nil {
		log.Logger().Panic("app error", zap.Error(err))
	}
}
