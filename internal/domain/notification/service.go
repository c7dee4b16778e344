package notification

import "context"

// Notifier delivers events to whoever renders them. Delivery never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Service publishes events and hands out subscriptions for streaming.
type Service interface {
	Notifier

	// Subscribe returns a channel of events on topic and a cleanup function
	Subscribe(ctx context.Context, topic string) (<-chan Event, func())

	// Stop flushes queued events and stops background delivery
	Stop()
}
