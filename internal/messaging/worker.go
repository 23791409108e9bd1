package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// TrainTaskHandler runs one training task to completion. Implemented by the
// training engine.
type TrainTaskHandler interface {
	HandleTrainTask(ctx context.Context, payload TrainTaskPayload) error
}

// Worker drains a Receiver with a fixed number of goroutines. Tasks that
// fail with an infrastructure error are Nack'd for redelivery; everything
// else is Ack'd (training failures are terminal model states, not queue
// errors).
type Worker struct {
	receiver    Receiver
	handler     TrainTaskHandler
	concurrency int
	wg          sync.WaitGroup
}

func NewWorker(receiver Receiver, handler TrainTaskHandler, concurrency int) *Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Worker{receiver: receiver, handler: handler, concurrency: concurrency}
}

func (w *Worker) Start(ctx context.Context) {
	slog.Info("starting workers", "concurrency", w.concurrency)

	w.wg.Add(w.concurrency)
	for i := 0; i < w.concurrency; i++ {
		go func(id int) {
			defer w.wg.Done()
			for task := range w.receiver.Tasks() {
				w.processTask(ctx, id, task)
			}
			slog.Info("worker stopping, task channel closed", "worker", id)
		}(i)
	}
}

func (w *Worker) processTask(ctx context.Context, id int, task Task) {
	switch task.Type() {
	case TrainQueue:
		var payload TrainTaskPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			slog.Error("error unmarshalling train task, rejecting", "worker", id, "error", err)
			if err := task.Ack(); err != nil {
				slog.Error("error acking malformed task", "worker", id, "error", err)
			}
			return
		}

		slog.Info("processing train task", "worker", id, "model_id", payload.ModelId)
		if err := w.handler.HandleTrainTask(ctx, payload); err != nil {
			slog.Error("train task failed, requeueing", "worker", id, "model_id", payload.ModelId, "error", err)
			if err := task.Nack(); err != nil {
				slog.Error("error nacking task", "worker", id, "error", err)
			}
			return
		}

		if err := task.Ack(); err != nil {
			slog.Error("error acking task", "worker", id, "error", err)
		}
	default:
		slog.Warn("dropping task from unknown queue", "worker", id, "queue", task.Type())
		if err := task.Ack(); err != nil {
			slog.Error("error acking unknown task", "worker", id, "error", err)
		}
	}
}

// Wait blocks until the receiver is closed and all in-flight tasks finish.
func (w *Worker) Wait() {
	w.wg.Wait()
}
