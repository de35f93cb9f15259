package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoBrokers(t *testing.T) {
	producer, err := NewProducer(nil)
	assert.ErrorIs(t, err, ErrNoBrokers)
	assert.Nil(t, producer)

	group, err := NewConsumerGroup([]string{}, "listing_indexer")
	assert.ErrorIs(t, err, ErrNoBrokers)
	assert.Nil(t, group)
}
