package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TrainQueue      = "train_queue"
	RetryDelay      = 5 * time.Second
	MaxConnectRetry = 5
)

// ErrQueueClosed is returned by publishes that arrive after Close. Callers
// treat it like any other publish failure and mark the model FAILED.
var ErrQueueClosed = errors.New("queue is closed")

type Task interface {
	Type() string

	Payload() []byte

	Ack() error

	Nack() error
}

// TrainTaskPayload carries only the model id; the worker reloads the model
// row so it always trains against the latest persisted configuration.
type TrainTaskPayload struct {
	ModelId uuid.UUID
}

type Publisher interface {
	PublishTrainTask(ctx context.Context, payload TrainTaskPayload) error

	Close()
}

type Receiver interface {
	Tasks() <-chan Task

	Close()
}
