// Package events carries content events from the console to Kafka and back
// out to the notifier.
package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

const DefaultTopic = "course-content-events"

// Sender is satisfied by *kafka.Producer.
type Sender interface {
	Send(ctx context.Context, topic, key string, message interface{}) error
}

// KafkaPublisher writes each event to topic keyed by course id so a course's
// events stay ordered within one partition.
type KafkaPublisher struct {
	sender Sender
	topic  string
}

func NewKafkaPublisher(sender Sender, topic string) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaPublisher{sender: sender, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.ContentEvent) error {
	return p.sender.Send(ctx, p.topic, event.CourseID, event)
}

// LogPublisher only logs events. It stands in when no brokers are configured.
type LogPublisher struct {
	logger *logging.Logger
}

func NewLogPublisher(logger *logging.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.ContentEvent) error {
	p.logger.Info(ctx, "content event", eventFields(event)...)
	return nil
}

func eventFields(event domain.ContentEvent) []zap.Field {
	fields := []zap.Field{
		zap.String("type", string(event.Type)),
		zap.String("course_id", event.CourseID),
		zap.String("entity_id", event.EntityID),
		zap.Time("occurred_at", event.OccurredAt),
	}
	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	}
	if event.Title != "" {
		fields = append(fields, zap.String("title", event.Title))
	}
	if event.StudentID != "" {
		fields = append(fields, zap.String("student_id", event.StudentID))
	}
	return fields
}
