package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/Conte777/tweetfeed/config"
	"github.com/Conte777/tweetfeed/internal/domain/alert/dto"
)

// Producer publishes new tweet events
type Producer struct {
	writer *kafka.Writer
	topic  string
	logger zerolog.Logger
}

// NewProducer creates a kafka-go writer for the configured topic
func NewProducer(cfg *config.KafkaConfig, logger zerolog.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Msg("Kafka producer initialized")

	return &Producer{
		writer: writer,
		topic:  cfg.Topic,
		logger: logger,
	}, nil
}

// PublishNewTweet sends one event keyed by tweet id so that
// repeated events for a tweet land on the same partition
func (p *Producer) PublishNewTweet(ctx context.Context, event dto.NewTweetEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte("tweet-" + event.TweetID),
		Value: data,
	})
	if err != nil {
		p.logger.Error().Err(err).
			Str("tweet_id", event.TweetID).
			Msg("Failed to send new tweet event")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.Debug().
		Str("tweet_id", event.TweetID).
		Str("event_id", event.EventID).
		Msg("New tweet event sent")

	return nil
}

// Close flushes pending messages and closes the writer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
