package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type ConsumerConfig struct {
	Brokers []string
	GroupID string
	Topics  []string
}

// Message is the subset of a Kafka record handlers care about.
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Key       []byte
	Value     []byte
}

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(cfg ConsumerConfig) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one Kafka broker must be specified")
	}
	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("at least one topic must be specified")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		GroupTopics: cfg.Topics,
	})
	return &Consumer{reader: reader}, nil
}

// Run fetches messages until ctx is done, committing each one after handle
// returns. Handler errors go to onError; the message is committed either way.
func (c *Consumer) Run(ctx context.Context, handle func(context.Context, Message) error, onError func(error)) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			onError(fmt.Errorf("fetch message: %w", err))
			continue
		}

		if err := handle(ctx, Message{
			Topic:     msg.Topic,
			Partition: msg.Partition,
			Offset:    msg.Offset,
			Key:       msg.Key,
			Value:     msg.Value,
		}); err != nil {
			onError(err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			onError(fmt.Errorf("commit message: %w", err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
