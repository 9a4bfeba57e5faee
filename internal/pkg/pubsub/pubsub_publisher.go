package pubsub

import (
	"context"
	"sync"

	"documentstore/internal/pkg/log_messages"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/service/interfaces"

	"cloud.google.com/go/pubsub/v2"
)

// EventPublisher fans change events out to Pub/Sub topics. Topic publishers
// are created lazily and reused: the underlying publisher batches messages,
// which a per-publish instance would defeat.
type EventPublisher struct {
	PubSubClient interfaces.PubSubPublisherClientInterface
	Ctx          context.Context
	Cancel       context.CancelFunc

	mu         sync.Mutex
	publishers map[string]interfaces.PublisherInterface
}

// PubSubPublisherClientFactory makes new clients (mockable in tests).
type PubSubPublisherClientFactory interface {
	NewPubSubPublisherClient(ctx context.Context, projectID string) (interfaces.PubSubPublisherClientInterface, error)
}

type defaultPubSubPublisherClientFactory struct{}

func (f *defaultPubSubPublisherClientFactory) NewPubSubPublisherClient(ctx context.Context,
	projectID string) (interfaces.PubSubPublisherClientInterface, error) {
	sdkClient, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &pubSubPublisherClientAdapter{client: sdkClient}, nil
}

// pubSubPublisherClientAdapter wraps *pubsub.Client for publishing
type pubSubPublisherClientAdapter struct {
	client *pubsub.Client
}

func (c *pubSubPublisherClientAdapter) Publisher(topic string) interfaces.PublisherInterface {
	return &publisherAdapter{publisher: c.client.Publisher(topic)}
}

func (c *pubSubPublisherClientAdapter) Close() error {
	return c.client.Close()
}

type publisherAdapter struct {
	publisher *pubsub.Publisher
}

func (p *publisherAdapter) Publish(ctx context.Context, msg []byte, attrs map[string]string) error {
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg,
		Attributes: attrs,
	})
	// Wait for the result
	_, err := result.Get(ctx)
	return err
}

// NewEventPublisher is the default constructor for production use.
// Declared as a variable so tests can replace it.
var NewEventPublisher = func(ctx context.Context, projectID string) (*EventPublisher, error) {
	factory := &defaultPubSubPublisherClientFactory{}
	return NewEventPublisherWithFactory(ctx, projectID, factory)
}

// Construct with a factory (testable).
func NewEventPublisherWithFactory(ctx context.Context, projectID string,
	factory PubSubPublisherClientFactory) (*EventPublisher, error) {
	client, err := factory.NewPubSubPublisherClient(ctx, projectID)
	if err != nil {
		logger.CtxError(ctx, "Failed creating PubSub client", err)
		return nil, err
	}
	logger.CtxInfo(ctx, log_messages.PubsubPublisherCreated)

	publisherCtx, cancel := context.WithCancel(ctx)
	return &EventPublisher{
		PubSubClient: client,
		Ctx:          publisherCtx,
		Cancel:       cancel,
		publishers:   make(map[string]interfaces.PublisherInterface),
	}, nil
}

// Publish sends an event to a topic. The request trace id rides along as a
// message attribute so consumers can correlate events with requests.
func (p *EventPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	var attrs map[string]string
	if traceID := logger.GetTraceID(ctx); traceID != "" {
		attrs = map[string]string{"traceId": traceID}
	}
	return p.publisherFor(topic).Publish(ctx, msg, attrs)
}

func (p *EventPublisher) publisherFor(topic string) interfaces.PublisherInterface {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.publishers == nil {
		p.publishers = make(map[string]interfaces.PublisherInterface)
	}
	publisher, ok := p.publishers[topic]
	if !ok {
		publisher = p.PubSubClient.Publisher(topic)
		p.publishers[topic] = publisher
	}
	return publisher
}

func (p *EventPublisher) Close() error {
	if p.Cancel != nil {
		p.Cancel()
	}
	return p.PubSubClient.Close()
}
