// Package notify defines the fire-and-forget notification sink the engine
// emits "report ready" and tip events to. The core only publishes; it
// never reads notification state back.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Kind classifies a notification for presentation.
type Kind string

// Notification kinds.
const (
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindAI      Kind = "ai"
)

// Notification is one event emitted to the inbox.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	Category  string    `json:"category,omitempty"`
	LinkRef   string    `json:"link_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a notification with a fresh id and timestamp.
func New(title, message string, kind Kind, category, linkRef string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Kind:      kind,
		Category:  category,
		LinkRef:   linkRef,
		CreatedAt: time.Now().UTC(),
	}
}

// Sink receives notifications. There is no acknowledgement path back.
type Sink interface {
	Publish(ctx context.Context, n Notification) error
}

// ConsoleSink writes notifications as single lines, for CLI runs.
type ConsoleSink struct {
	out io.Writer
}

// NewConsoleSink creates a sink writing to out.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

// Publish writes the notification as one line.
func (s *ConsoleSink) Publish(_ context.Context, n Notification) error {
	_, err := fmt.Fprintf(s.out, "[%s] %s: %s\n", n.Kind, n.Title, n.Message)
	return err
}

// RedisSink publishes notifications as JSON on a Redis channel, for
// deployments where an inbox service consumes them.
type RedisSink struct {
	client  *redis.Client
	channel string
}

// NewRedisSink creates a sink publishing to channel via client.
func NewRedisSink(client *redis.Client, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

// Publish marshals the notification and publishes it.
func (s *RedisSink) Publish(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
