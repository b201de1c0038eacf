package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/config"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/events"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/kafka"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("cannot create logger: %v", err))
	}
	logger := logging.New(zapLogger)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	brokers := cfg.KafkaBrokers
	if len(brokers) == 0 {
		brokers = []string{"kafka:9092"}
	}

	logger.Info(ctx, "Starting content event consumer",
		zap.Strings("brokers", brokers),
		zap.String("topic", cfg.KafkaContentTopic),
		zap.String("group_id", cfg.KafkaGroupID),
	)

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: brokers,
		GroupID: cfg.KafkaGroupID,
		Topics:  []string{cfg.KafkaContentTopic},
	})
	if err != nil {
		logger.Fatal(ctx, "cannot create kafka consumer", zap.Error(err))
	}
	defer func() { _ = consumer.Close() }()

	notifier := events.NewNotifier(logger)
	err = consumer.Run(ctx, notifier.Handle, func(err error) {
		logger.Warn(ctx, "content event not processed", zap.Error(err))
	})
	if err != nil {
		logger.Error(ctx, "consumer stopped", zap.Error(err))
	}

	summary := make([]zap.Field, 0, len(notifier.Counts()))
	for eventType, n := range notifier.Counts() {
		summary = append(summary, zap.Int(string(eventType), n))
	}
	logger.Info(ctx, "Consumer shutting down", summary...)
}
