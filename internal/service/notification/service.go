package notification

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ncl-services/ncl-backend-go/internal/domain/notification"
	"github.com/ncl-services/ncl-backend-go/internal/pkg/sse"
)

// Config holds notification service configuration
type Config struct {
	QueueSize int // default: 100
}

type service struct {
	hub    *sse.Hub
	config Config

	queue    chan notification.Event
	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewNotificationService creates a notification service with a background
// publisher, so callers never wait on slow stream clients.
func NewNotificationService(hub *sse.Hub, cfg Config) notification.Service {
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 100
	}

	s := &service{
		hub:    hub,
		config: cfg,
		queue:  make(chan notification.Event, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.worker()

	slog.Info("Notification service started", "queue_size", cfg.QueueSize)
	return s
}

// worker drains the queue into the hub until Stop.
func (s *service) worker() {
	defer s.wg.Done()

	for {
		select {
		case event := <-s.queue:
			s.publish(event)
		case <-s.stopCh:
			// Drain what is left
			for {
				select {
				case event := <-s.queue:
					s.publish(event)
				default:
					return
				}
			}
		}
	}
}

func (s *service) publish(event notification.Event) {
	s.hub.Publish(event.Topic, sse.Event{
		Event: "notification",
		Data:  event,
	})
}

// Notify implements notification.Notifier. It never blocks; events are dropped
// when the queue is full.
func (s *service) Notify(ctx context.Context, event notification.Event) {
	if event.Topic == "" {
		event.Topic = notification.TopicTimekeeping
	}
	select {
	case s.queue <- event:
	default:
		slog.Warn("Notification queue full, dropping event", "topic", event.Topic, "message", event.Message)
	}
}

// Subscribe creates an SSE subscription for a topic
func (s *service) Subscribe(ctx context.Context, topic string) (<-chan notification.Event, func()) {
	ch, cleanup := s.hub.Subscribe(topic)

	out := make(chan notification.Event, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if ev, ok := event.Data.(notification.Event); ok {
					ev.Topic = event.Topic
					select {
					case out <- ev:
					case <-ctx.Done():
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}

// Stop gracefully stops the notification service
func (s *service) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	slog.Info("Notification service stopped")
}
