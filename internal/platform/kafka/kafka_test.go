package kafka

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DropsBlankBrokers(t *testing.T) {
	client := NewClient([]string{" broker:9092 ", "", "  "})
	require.Equal(t, []string{"broker:9092"}, client.Brokers)
	require.True(t, client.Enabled())
	require.False(t, NewClient(nil).Enabled())
}

func TestNewWriter_FlushesSingleEventsPromptly(t *testing.T) {
	writer := NewClient([]string{"broker:9092"}).NewWriter("backoffice.order-events")
	defer writer.Close()

	require.Equal(t, "backoffice.order-events", writer.Topic)
	require.IsType(t, &kafka.Hash{}, writer.Balancer)
	require.Equal(t, writerBatchTimeout, writer.BatchTimeout)
	require.Less(t, writer.BatchTimeout, time.Second)
	require.Equal(t, writerMaxAttempts, writer.MaxAttempts)
}
