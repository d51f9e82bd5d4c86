// Package events carries domain events between the HTTP handlers and the
// background reactions to them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"venue-webapp/model"
)

const (
	TopicShowCreated     = "show.created"
	TopicTicketPurchased = "ticket.purchased"

	consumerGroup = "venue-webapp"
)

type ShowCreated struct {
	Show model.Show `json:"show"`
}

type TicketPurchased struct {
	UserId   string `json:"userId"`
	ShowId   string `json:"showId"`
	TicketId string `json:"ticketId"`
	Quantity int    `json:"quantity"`
}

// Bus publishes JSON-encoded events.
type Bus struct {
	publisher message.Publisher
}

func NewBus(publisher message.Publisher) *Bus {
	return &Bus{publisher: publisher}
}

func (b *Bus) Publish(ctx context.Context, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot encode %v event: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	if err := b.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("cannot publish %v event: %w", topic, err)
	}
	return nil
}

// NewGoChannel returns an in-process pub/sub.
func NewGoChannel(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
}

// NewRedisStream returns a publisher and subscriber backed by Redis streams.
func NewRedisStream(client redis.UniversalClient, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create redis publisher: %w", err)
	}

	subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		ConsumerGroup: consumerGroup,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create redis subscriber: %w", err)
	}

	return publisher, subscriber, nil
}

// NewRouter returns a router with panic recovery and a short retry policy.
func NewRouter(logger watermill.LoggerAdapter) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      3,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          logger,
	}.Middleware)

	return router, nil
}
