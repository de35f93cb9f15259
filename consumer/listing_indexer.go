package consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/Emacore17/adottaungatto-it-sub001/pkg/metrics"
	"github.com/Shopify/sarama"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// errSkip marks events that can never be applied. They are committed so
// they do not block the partition.
var errSkip = errors.New("event skipped")

// handle applies one message. A nil error means its offset may be committed:
// the event was applied, or it can never be. Any other error is an indexer
// failure and the event must be delivered again.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	event, err := consumer.apply(ctx, message.Value)
	metrics.ConsumedMessagesTotal.WithLabelValues(message.Topic, eventLabel(event, err)).Inc()

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errSkip):
		log.Logger().Warn("listing event skipped", zap.String("payload", string(message.Value)), zap.Error(err))
		return nil
	}

	log.Logger().Error("listing event could not be applied",
		zap.String("event", event.Event),
		zap.String("listingID", event.Listing.ID),
		zap.Int32("partition", message.Partition),
		zap.Int64("offset", message.Offset),
		zap.Error(err))
	return err
}

func (consumer *Consumer) apply(ctx context.Context, payload []byte) (listings.Event, error) {
	var event listings.Event
	if err := jsoniter.Unmarshal(payload, &event); err != nil {
		return event, fmt.Errorf("%w: deserialization error: %s", errSkip, err)
	}
	if event.Listing.ID == "" {
		return event, fmt.Errorf("%w: listing id is empty", errSkip)
	}

	switch event.Event {
	case listings.EventWithdrawn:
		return event, consumer.indexer.DeleteListing(ctx, event.Listing.ID)
	case listings.EventPublished:
		l := event.Listing
		anc, err := consumer.index.ResolveAncestors(l.ComuneID)
		if err != nil || anc.Comune == nil {
			return event, fmt.Errorf("%w: listing %s has unknown comune %q", errSkip, l.ID, l.ComuneID)
		}
		l.RegionID = anc.Region.ID
		l.ProvinceID = anc.Province.ID
		if l.PublishedAt.IsZero() {
			l.PublishedAt = event.OccurredAt
		}
		return event, consumer.indexer.IndexListing(ctx, l)
	}

	return event, fmt.Errorf("%w: unknown event %q", errSkip, event.Event)
}

func eventLabel(event listings.Event, err error) string {
	if errors.Is(err, errSkip) {
		return "skipped"
	}
	if err != nil {
		return "failed"
	}
	return event.Event
}
