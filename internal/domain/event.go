package domain

import (
	"context"
	"time"
)

// RawEvent is one unprocessed message from the source topic. Its value is
// expected to be a whole feed document.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is one serialized normalized station destined for the sink
// topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
