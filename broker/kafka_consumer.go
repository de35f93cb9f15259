package broker

import (
	"github.com/Shopify/sarama"
)

func NewConsumerGroup(brokers []string, group string) (sarama.ConsumerGroup, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	// Offsets are committed by the handler once a message is applied.
	config.Consumer.Offsets.AutoCommit.Enable = false

	return sarama.NewConsumerGroup(brokers, group, config)
}
