package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProducer_DefaultBatchTimeout(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	assert.Equal(t, defaultBatchTimeout, p.batchTimeout)
}

func TestNewProducer_ConfiguredBatchTimeout(t *testing.T) {
	p := NewProducer(Config{
		Brokers:      []string{"localhost:9092"},
		BatchTimeout: 50 * time.Millisecond,
	})
	assert.Equal(t, 50*time.Millisecond, p.batchTimeout)
}

func TestGetOrCreateWriter_ReusesWriterPerTopic(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	first := p.getOrCreateWriter("vahana.origination.events")
	second := p.getOrCreateWriter("vahana.origination.events")
	assert.Same(t, first, second)

	other := p.getOrCreateWriter("vahana.audit.events")
	assert.NotSame(t, first, other)
}
