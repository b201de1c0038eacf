package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/kafka"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

// Notifier consumes content events and reports them. It keeps a running
// count per event type for the shutdown summary.
type Notifier struct {
	logger *logging.Logger

	mu     sync.Mutex
	counts map[domain.ContentEventType]int
}

func NewNotifier(logger *logging.Logger) *Notifier {
	return &Notifier{logger: logger, counts: make(map[domain.ContentEventType]int)}
}

// Handle decodes one Kafka message. Malformed payloads are reported as
// errors; the consumer commits them anyway.
func (n *Notifier) Handle(ctx context.Context, msg kafka.Message) error {
	var event domain.ContentEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("decode content event at %s/%d/%d: %w", msg.Topic, msg.Partition, msg.Offset, err)
	}
	if event.Type == "" {
		return fmt.Errorf("content event at %s/%d/%d has no type", msg.Topic, msg.Partition, msg.Offset)
	}

	n.mu.Lock()
	n.counts[event.Type]++
	n.mu.Unlock()

	fields := append(eventFields(event),
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
	)
	n.logger.Info(ctx, "course content changed", fields...)
	return nil
}

func (n *Notifier) Counts() map[domain.ContentEventType]int {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make(map[domain.ContentEventType]int, len(n.counts))
	for k, v := range n.counts {
		out[k] = v
	}
	return out
}
