package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const (
	sqsMaxMessages = 5
	sqsWaitSeconds = 5
)

func NewSqsClient(ctx context.Context, region string) (*sqs.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return sqs.NewFromConfig(cfg), nil
}

// SqsPublisher sends job descriptors to the request queue. The queue URL
// is resolved from the queue name once at construction.
type SqsPublisher struct {
	client   *sqs.Client
	queueUrl string
}

func NewSqsPublisher(ctx context.Context, client *sqs.Client, queueName string) (*SqsPublisher, error) {
	out, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queueName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve queue url for %s: %w", queueName, err)
	}
	return &SqsPublisher{client: client, queueUrl: *out.QueueUrl}, nil
}

func (p *SqsPublisher) Publish(ctx context.Context, msg JobMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal job message: %w", err)
	}
	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueUrl),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send job message: %w", err)
	}
	return nil
}

// SqsResponseSource reads execution reports from the response queue with
// short-polling bounds: at most 5 messages per receive, at most 5 seconds
// of wait.
type SqsResponseSource struct {
	client   *sqs.Client
	queueUrl string
}

func NewSqsResponseSource(client *sqs.Client, queueUrl string) *SqsResponseSource {
	return &SqsResponseSource{client: client, queueUrl: queueUrl}
}

func (s *SqsResponseSource) Receive(ctx context.Context) ([]Message, error) {
	output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.queueUrl),
		MaxNumberOfMessages: sqsMaxMessages,
		WaitTimeSeconds:     sqsWaitSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to receive response messages: %w", err)
	}

	messages := make([]Message, 0, len(output.Messages))
	for _, m := range output.Messages {
		if m.Body == nil || m.ReceiptHandle == nil {
			continue
		}
		messages = append(messages, Message{Body: *m.Body, Handle: *m.ReceiptHandle})
	}
	return messages, nil
}

func (s *SqsResponseSource) Delete(ctx context.Context, handle string) error {
	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueUrl),
		ReceiptHandle: aws.String(handle),
	})
	if err != nil {
		return fmt.Errorf("failed to delete response message: %w", err)
	}
	return nil
}
