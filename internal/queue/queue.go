package queue

import "context"

// JobMessage is the outbound job descriptor consumed by the execution
// environment. Field names are part of the wire contract.
type JobMessage struct {
	JobID    string `json:"jobId"`
	S3Key    string `json:"s3Key"`
	Language string `json:"language"`
}

// Publisher dispatches one job descriptor per submission. No publish retry
// is performed; a failed publish fails the submission.
type Publisher interface {
	Publish(ctx context.Context, msg JobMessage) error
}

// Message is one raw inbound response together with the transport handle
// needed to acknowledge it.
type Message struct {
	Body   string
	Handle string
}

// ResponseSource pulls execution reports from the inbound channel. Receive
// returns a bounded batch after a bounded wait; Delete acknowledges a
// single consumed message so it is not redelivered.
type ResponseSource interface {
	Receive(ctx context.Context) ([]Message, error)
	Delete(ctx context.Context, handle string) error
}
