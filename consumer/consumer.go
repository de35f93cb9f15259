package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/Shopify/sarama"
	"go.uber.org/zap"
)

const (
	GroupName = "listing_indexer"

	defaultRetryBackoff = 5 * time.Second
)

// Indexer is where consumed listings end up.
type Indexer interface {
	IndexListing(ctx context.Context, l listings.Listing) error
	DeleteListing(ctx context.Context, id string) error
}

// Consumer keeps the listing index in sync with the listing events topic.
type Consumer struct {
	Ready   chan bool
	index   *geo.Index
	indexer Indexer
	group   sarama.ConsumerGroup

	// pause before giving up a claim after an indexer failure
	retryBackoff time.Duration
}

func NewConsumer(group sarama.ConsumerGroup, index *geo.Index, indexer Indexer) *Consumer {
	return &Consumer{
		Ready:        make(chan bool),
		index:        index,
		indexer:      indexer,
		group:        group,
		retryBackoff: defaultRetryBackoff,
	}
}

// Start joins the group and blocks until the first session is set up. It
// keeps rejoining after rebalances until ctx is cancelled.
func (consumer *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			if err := consumer.group.Consume(ctx, []string{listings.EventsTopic}, consumer); err != nil {
				log.Logger().Panic("Error from consumer:", zap.Error(err))
			}
			// check if context was cancelled, signaling that the consumer should stop
			if ctx.Err() != nil {
				return
			}
			consumer.Ready = make(chan bool)
		}
	}()
	<-consumer.Ready
	log.Logger().Info("Sarama consumer up and running!...", zap.String("topic", listings.EventsTopic))
}

// Setup is run at the beginning of a new session, before ConsumeClaim
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as Ready
	close(consumer.Ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
// Offsets are positional, so a message that could not be applied ends the
// claim before anything after it is marked. The session then ends and the
// next one resumes from the failed message.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := consumer.handle(session.Context(), message); err != nil {
				select {
				case <-time.After(consumer.retryBackoff):
				case <-session.Context().Done():
				}
				return fmt.Errorf("listing event at %s/%d offset %d not applied: %w",
					message.Topic, message.Partition, message.Offset, err)
			}
			session.MarkMessage(message, "")
			session.Commit()
		case <-session.Context().Done():
			return nil
		}
	}
}
