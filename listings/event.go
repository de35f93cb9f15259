package listings

import "time"

const EventsTopic = "topic.listings.events"

// lifecycle events carried on EventsTopic
const (
	EventPublished = "published"
	EventWithdrawn = "withdrawn"
)

// Event is a listing lifecycle change. Withdrawn events only need Listing.ID.
type Event struct {
	ID         string    `json:"id"`
	Event      string    `json:"event"`
	Listing    Listing   `json:"listing"`
	OccurredAt time.Time `json:"occurredAt"`
}

func ValidEvent(e string) bool {
	return e == EventPublished || e == EventWithdrawn
}
