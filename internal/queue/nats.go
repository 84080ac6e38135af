package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	natsBatchSize = 5
	natsWait      = 5 * time.Second
)

// NatsPublisher publishes job descriptors to a NATS subject. Alternative
// transport for deployments without AWS.
type NatsPublisher struct {
	nc      *nats.Conn
	subject string
}

func NewNatsPublisher(nc *nats.Conn, subject string) *NatsPublisher {
	return &NatsPublisher{nc: nc, subject: subject}
}

func (p *NatsPublisher) Publish(_ context.Context, msg JobMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal job message: %w", err)
	}
	if err := p.nc.Publish(p.subject, body); err != nil {
		return fmt.Errorf("failed to publish job message to NATS: %w", err)
	}
	return nil
}

// NatsResponseSource drains a synchronous subscription in bounded batches.
// Core NATS delivers at most once, so Delete has nothing to acknowledge.
type NatsResponseSource struct {
	sub *nats.Subscription
}

func NewNatsResponseSource(nc *nats.Conn, subject string) (*NatsResponseSource, error) {
	sub, err := nc.SubscribeSync(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	return &NatsResponseSource{sub: sub}, nil
}

func (s *NatsResponseSource) Receive(ctx context.Context) ([]Message, error) {
	deadline := time.Now().Add(natsWait)

	var messages []Message
	for len(messages) < natsBatchSize {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		msg, err := s.sub.NextMsg(remaining)
		if errors.Is(err, nats.ErrTimeout) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read from NATS subscription: %w", err)
		}
		messages = append(messages, Message{Body: string(msg.Data)})

		if ctx.Err() != nil {
			break
		}
	}
	return messages, nil
}

func (s *NatsResponseSource) Delete(context.Context, string) error {
	return nil
}
