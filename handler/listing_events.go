package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	"github.com/Emacore17/adottaungatto-it-sub001/search"
	"github.com/Shopify/sarama"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

type createListingEventsRequest struct {
	Events []listings.Event `json:"events"`
}

type CreateListingEventsResponse struct {
	IDs []string `json:"ids"`
}

// createListingEvents godoc
// @Summary            Publish listing lifecycle events to the indexer
// @Tags               Listing
// @Accept             json
// @Produce            json
// @Success            201 {object} CreateListingEventsResponse
// @Failure            400 {object} ErrorResponse
// @Failure            503 {object} ErrorResponse
// @Param              body body createListingEventsRequest true "RequestBody"
// @Security           ApiKeyAuth
// @Router             /listings/events [POST]
func CreateListingEventsHandler(producer sarama.SyncProducer) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if producer == nil {
			return fmt.Errorf("%w: kafka producer is not configured", search.ErrUpstreamUnavailable)
		}

		var req createListingEventsRequest
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to decode request. err: %s", err))
		}
		if len(req.Events) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "events must not be empty")
		}
		for i, e := range req.Events {
			if !listings.ValidEvent(e.Event) {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("events[%d]: unknown event %q", i, e.Event))
			}
			if e.Listing.ID == "" {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("events[%d]: listing id is required", i))
			}
		}

		ids := make([]string, 0, len(req.Events))
		for _, e := range req.Events {
			e.ID = uuid.New().String()
			if e.OccurredAt.IsZero() {
				e.OccurredAt = time.Now().UTC()
			}
			bytes, err := jsoniter.Marshal(e)
			if err != nil {
				return err
			}

			_, _, err = producer.SendMessage(&sarama.ProducerMessage{
				Topic: listings.EventsTopic,
				Key:   sarama.StringEncoder(e.Listing.ID),
				Value: sarama.ByteEncoder(bytes),
			})
			if err != nil {
				log.Logger().Error("failed to send listing event", zap.String("listingID", e.Listing.ID), zap.Error(err))
				return fmt.Errorf("%w: %s", search.ErrUpstreamUnavailable, err)
			}
			ids = append(ids, e.ID)
		}

		return ctx.Status(http.StatusCreated).JSON(CreateListingEventsResponse{IDs: ids})
	}
}
