package memory

import (
	"context"
	"sync"

	"github.com/sheikh-saqib/exchange-compliance-ledger/internal/interfaces"
)

// Message is one published event.
type Message struct {
	Topic string
	Key   string
	Event any
}

// Publisher keeps published events in memory. Used when no broker is
// configured and in tests.
type Publisher struct {
	mu       sync.Mutex
	messages []Message
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(ctx context.Context, topic string, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.messages = append(p.messages, Message{Topic: topic, Key: key, Event: event})
	return nil
}

// Messages returns a copy of everything published so far.
func (p *Publisher) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := make([]Message, len(p.messages))
	copy(copied, p.messages)
	return copied
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
