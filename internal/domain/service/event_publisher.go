package service

import (
	"context"
	"time"
)

// Raid event types published to the notification channel.
const (
	EventRaidCreated     = "raid.created"
	EventSignupCreated   = "signup.created"
	EventSignupCancelled = "signup.cancelled"
)

// RaidEvent describes a roster change for downstream notification consumers
// (the chat-bot collaborator). Character fields are only set when a character
// took part in the action.
type RaidEvent struct {
	RequestID      string     `json:"request_id,omitempty"` // For distributed tracing
	Type           string     `json:"type"`
	RaidID         int64      `json:"raid_id"`
	RaidTitle      string     `json:"raid_title"`
	RaidSubtitle   string     `json:"raid_subtitle,omitempty"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	ActorName      string     `json:"actor_name"` // Display name of the user who acted.
	CreatorName    string     `json:"creator_name,omitempty"`
	CharacterName  string     `json:"character_name,omitempty"`
	CharacterJob   string     `json:"character_job,omitempty"`
	CharacterLevel *int       `json:"character_level,omitempty"`
	CurrentCount   int        `json:"current_count"`
	Capacity       int        `json:"capacity"`
}

// EventPublisher is the fire-and-forget notification port. The domain calls
// it after a committed state change but never observes or depends on its
// result: publish failures are logged by the caller and never affect the
// transaction outcome.
type EventPublisher interface {
	// PublishRaidEvent publishes a raid roster event for async processing.
	PublishRaidEvent(ctx context.Context, event *RaidEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
