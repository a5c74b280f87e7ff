// Package events defines roster change payloads and their publishers.
package events

import (
	"context"
	"time"
)

// Action identifies the roster mutation that produced an event.
type Action string

const (
	ActionSignup     Action = "signup"
	ActionUnregister Action = "unregister"
)

// RosterChanged is emitted after a successful signup or unregister.
type RosterChanged struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	Action     Action    `json:"action"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers roster change events to downstream consumers.
type Publisher interface {
	PublishRosterChanged(ctx context.Context, event RosterChanged) error
	Close() error
}

// NopPublisher discards events. Wired when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishRosterChanged(ctx context.Context, event RosterChanged) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
