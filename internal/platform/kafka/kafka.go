package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer used by publishers.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Client struct {
	Brokers []string
}

func NewClient(brokers []string) *Client {
	cleaned := make([]string, 0, len(brokers))
	for _, b := range brokers {
		b = strings.TrimSpace(b)
		if b != "" {
			cleaned = append(cleaned, b)
		}
	}
	return &Client{Brokers: cleaned}
}

func (c *Client) Enabled() bool {
	return c != nil && len(c.Brokers) > 0
}

const (
	// kafka-go waits a full second to fill a batch by default; status events are written one at a time.
	writerBatchTimeout = 10 * time.Millisecond
	writerWriteTimeout = 3 * time.Second
	writerMaxAttempts  = 3
)

// NewWriter hashes on the message key so events of one order stay ordered within a partition.
func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: writerBatchTimeout,
		WriteTimeout: writerWriteTimeout,
		MaxAttempts:  writerMaxAttempts,
	}
}

func PublishJSON(ctx context.Context, writer Writer, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data, Time: time.Now().UTC()})
}
