package broker

import (
	"errors"

	"github.com/Shopify/sarama"
)

var ErrNoBrokers = errors.New("KAFKA_BROKERS is not set")

func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	config := sarama.NewConfig()
	// Return success is required for sync producer.
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	// Events of one listing share a key, so they land on one partition in order.
	config.Producer.Partitioner = sarama.NewHashPartitioner

	return sarama.NewSyncProducer(brokers, config)
}
