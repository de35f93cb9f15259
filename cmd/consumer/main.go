package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Emacore17/adottaungatto-it-sub001/broker"
	"github.com/Emacore17/adottaungatto-it-sub001/config"
	"github.com/Emacore17/adottaungatto-it-sub001/consumer"
	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/Emacore17/adottaungatto-it-sub001/search"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Message will be handled in ConsumeClaim method.
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Logger().Warn("could not read .env", zap.Error(err))
	}
	cfg := config.Load()

	http.HandleFunc("/healthcheck", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	http.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
			log.Logger().Error("server could not started or stopped", zap.Error(err))
		}
	}()

	index, err := geo.Load(cfg.GeographyDataPath)
	if err != nil {
		log.Logger().Panic("failed to load geography", zap.Error(err))
	}

	client, err := broker.NewConsumerGroup(cfg.KafkaBrokers, consumer.GroupName)
	if err != nil {
		log.Logger().Panic("failed to init kafka consumer group", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listingIndex := search.NewListingIndex(cfg.ElasticURL, cfg.ElasticIndex)
	c := consumer.NewConsumer(client, index, listingIndex)
	c.Start(ctx)

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	healthy := true
	for healthy {
		select {
		case <-ctx.Done():
			log.Logger().Info("terminating: context cancelled")
			healthy = false
		case <-sigterm:
			log.Logger().Info("terminating: via signal")
			healthy = false
		}
	}

	cancel()
	if err = client.Close(); err != nil {
		log.Logger().Panic("Error closing client:", zap.Error(err))
	}
}
