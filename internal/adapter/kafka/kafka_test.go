package kafka

import (
	"testing"
	"time"

	"github.com/refuelradar/fuel-feed-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("feed-1"),
		Value:     []byte(`{"last_updated":"27/11/2024 11:45:32","stations":[]}`),
		Topic:     "raw-fuel-feeds",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "source", Value: []byte("cma-scheme")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("feed-1"), raw.Key)
	assert.JSONEq(t, `{"last_updated":"27/11/2024 11:45:32","stations":[]}`, string(raw.Value))
	assert.Equal(t, "raw-fuel-feeds", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "cma-scheme", raw.Headers["source"])
	assert.Nil(t, raw.Commit, "commit callback is attached by ExtractBatch, not the mapper")
}

func TestSerializeMessage(t *testing.T) {
	event := domain.OutputEvent{
		Key:   []byte("gb-00001"),
		Value: []byte(`{"site_id":"gb-00001"}`),
		Headers: map[string]string{
			"processed_at":      "2024-11-27T12:00:00Z",
			"brand":             "BP",
			"feed_last_updated": "2024-11-27T11:45:32Z",
		},
	}

	msg := serializeMessage(event)

	assert.Equal(t, []byte("gb-00001"), msg.Key)
	assert.Equal(t, event.Value, msg.Value)

	// Headers come out in sorted key order for deterministic output.
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "brand", msg.Headers[0].Key)
	assert.Equal(t, []byte("BP"), msg.Headers[0].Value)
	assert.Equal(t, "feed_last_updated", msg.Headers[1].Key)
	assert.Equal(t, "processed_at", msg.Headers[2].Key)
}
