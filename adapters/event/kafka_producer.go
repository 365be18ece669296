package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	TopicContentEvents = "portfolio.content.events"
	TopicContactEvents = "portfolio.contact.events"
)

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	ContactEventsWriter *kafka.Writer
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContentEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	contactWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContactEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
		ContactEventsWriter: contactWriter,
		logger:              log,
	}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, evt service.ContentEvent) error {
	key := evt.Resource + ":" + strconv.FormatInt(evt.ResourceID, 10)
	return c.write(ctx, c.ContentEventsWriter, key, evt)
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, evt service.ContactEvent) error {
	return c.write(ctx, c.ContactEventsWriter, strconv.FormatInt(evt.MessageID, 10), evt)
}

func (c *KafkaProducerClient) write(ctx context.Context, w *kafka.Writer, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		return fmt.Errorf("write to topic %s: %w", w.Topic, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishContentEvent(context.Context, service.ContentEvent) error { return nil }

func (NopPublisher) PublishContactEvent(context.Context, service.ContactEvent) error { return nil }
