// Package events defines the domain events the bot publishes for
// operational consumers (analytics, notification fan-out).
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract every published event satisfies.
type Event interface {
	// EventID returns a unique identifier for this occurrence. The
	// bus uses it to deduplicate redelivered publishes.
	EventID() string

	// EventType returns the unique code for this event.
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	ID         string
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventID() string { return e.ID }

func (e BaseEvent) EventType() string { return e.Type }

func (e BaseEvent) Payload() map[string]interface{} { return e.Data }

func (e BaseEvent) Timestamp() time.Time { return e.OccurredAt }

// NewRecommendationServed records that shops were presented to a user.
func NewRecommendationServed(userID string, shopNames []string, intent string) Event {
	now := time.Now()
	return BaseEvent{
		ID:   uuid.NewString(),
		Type: "RECOMMENDATION_SERVED",
		Data: map[string]interface{}{
			"user_id":     userID,
			"shop_names":  shopNames,
			"intent":      intent,
			"occurred_at": now,
		},
		OccurredAt: now,
	}
}

// NewSubscriptionActivated records a successful plan purchase.
func NewSubscriptionActivated(userID, planID string) Event {
	now := time.Now()
	return BaseEvent{
		ID:   uuid.NewString(),
		Type: "SUBSCRIPTION_ACTIVATED",
		Data: map[string]interface{}{
			"user_id":     userID,
			"plan_id":     planID,
			"occurred_at": now,
		},
		OccurredAt: now,
	}
}

// NewSubscriptionDeactivated records a cancellation or failed renewal.
func NewSubscriptionDeactivated(userID, planID string) Event {
	now := time.Now()
	return BaseEvent{
		ID:   uuid.NewString(),
		Type: "SUBSCRIPTION_DEACTIVATED",
		Data: map[string]interface{}{
			"user_id":     userID,
			"plan_id":     planID,
			"occurred_at": now,
		},
		OccurredAt: now,
	}
}
