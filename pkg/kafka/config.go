package kafka

import "time"

// Config holds Kafka connection parameters for the event producer.
type Config struct {
	Brokers []string

	// BatchTimeout bounds how long the writer buffers messages before a
	// flush. Zero means the 10ms default; domain events are low-volume, so
	// latency matters more than batching here.
	BatchTimeout time.Duration
}
