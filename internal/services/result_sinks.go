package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"core-banking-statements/internal/models"

	"cloud.google.com/go/storage"
	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/api/option"
)

// RoutingKeyResultPublished is the routing key of published result events.
const RoutingKeyResultPublished = "statement.result.published"

// GCSResultStore writes result content to a Cloud Storage bucket.
type GCSResultStore struct {
	client *storage.Client
	bucket string
}

// NewGCSResultStore connects to Cloud Storage. Without a credentials file
// Application Default Credentials are used.
func NewGCSResultStore(ctx context.Context, bucket, credentialsFile string) (*GCSResultStore, error) {
	if bucket == "" {
		return nil, errors.New("gcs bucket is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCSResultStore{client: client, bucket: bucket}, nil
}

func (s *GCSResultStore) Put(ctx context.Context, path string, content []byte) error {
	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return fmt.Errorf("write gs://%s/%s: %w", s.bucket, path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize gs://%s/%s: %w", s.bucket, path, err)
	}
	return nil
}

func (s *GCSResultStore) Close() error {
	return s.client.Close()
}

// NoopResultStore discards content. Used when no bucket is configured.
type NoopResultStore struct{}

func (NoopResultStore) Put(ctx context.Context, path string, content []byte) error {
	slog.DebugContext(ctx, "result store disabled, content not written", "result_path", path, "bytes", len(content))
	return nil
}

// AMQPResultNotifier publishes ResultPublishedEvents to a topic exchange.
type AMQPResultNotifier struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPResultNotifier(url, exchange string) (*AMQPResultNotifier, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &AMQPResultNotifier{conn: conn, channel: ch, exchange: exchange}, nil
}

func (n *AMQPResultNotifier) Notify(ctx context.Context, event models.ResultPublishedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal result event: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.channel.IsClosed() {
		ch, err := n.conn.Channel()
		if err != nil {
			return fmt.Errorf("reopen amqp channel: %w", err)
		}
		n.channel = ch
	}

	return n.channel.PublishWithContext(ctx, n.exchange, RoutingKeyResultPublished, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ResultID.String(),
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (n *AMQPResultNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// NoopResultNotifier drops events. Used when no broker is configured.
type NoopResultNotifier struct{}

func (NoopResultNotifier) Notify(ctx context.Context, event models.ResultPublishedEvent) error {
	slog.DebugContext(ctx, "result notifier disabled, event dropped", "result_id", event.ResultID)
	return nil
}

func (NoopResultNotifier) Close() error { return nil }
