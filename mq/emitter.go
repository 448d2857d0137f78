package mq

import (
	"context"
	"encoding/json"
	"log"

	"mercato/rdx"
)

// Event is a storefront event published for downstream consumers
// (search indexing, notifications, analytics).
type Event struct {
	Name     string `json:"name"`
	EntityID string `json:"entity_id"`
	UserID   string `json:"user_id,omitempty"`
}

const channel = "storefront-events"

// Emit publishes the event to Redis. Fire-and-forget: a publish failure is
// logged and never fails the originating request.
func Emit(ctx context.Context, name, entityID, userID string) {
	data, err := json.Marshal(Event{Name: name, EntityID: entityID, UserID: userID})
	if err != nil {
		log.Printf("[Emit] failed to marshal event %s: %v", name, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s: %v", name, err)
	}
}
