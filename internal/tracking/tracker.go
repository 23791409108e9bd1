package tracking

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const reportTimeout = 5 * time.Second

// Tracker records training lifecycle events with an external experiment
// tracker. Reporting is best-effort: a tracker outage must never affect
// training outcomes, so implementations log failures and move on.
type Tracker interface {
	TrainingStarted(modelId uuid.UUID, modelType string, datasetId uuid.UUID, hyperparameters map[string]float64)

	TrainingFinished(modelId uuid.UUID, status string, metrics map[string]float64, errorMessage string)
}

type NoopTracker struct{}

var _ Tracker = (*NoopTracker)(nil)

func (NoopTracker) TrainingStarted(uuid.UUID, string, uuid.UUID, map[string]float64) {}

func (NoopTracker) TrainingFinished(uuid.UUID, string, map[string]float64, string) {}

// HTTPTracker posts lifecycle events to a tracking server. Each report runs
// in its own goroutine with a short timeout so callers never block on it.
type HTTPTracker struct {
	client *resty.Client
}

var _ Tracker = (*HTTPTracker)(nil)

func NewHTTPTracker(baseURL string) *HTTPTracker {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(reportTimeout)
	return &HTTPTracker{client: client}
}

type trainingStartedEvent struct {
	ModelId         uuid.UUID          `json:"model_id"`
	ModelType       string             `json:"model_type"`
	DatasetId       uuid.UUID          `json:"dataset_id"`
	Hyperparameters map[string]float64 `json:"hyperparameters"`
	StartedAt       time.Time          `json:"started_at"`
}

type trainingFinishedEvent struct {
	ModelId    uuid.UUID          `json:"model_id"`
	Status     string             `json:"status"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Error      string             `json:"error,omitempty"`
	FinishedAt time.Time          `json:"finished_at"`
}

func (t *HTTPTracker) TrainingStarted(modelId uuid.UUID, modelType string, datasetId uuid.UUID, hyperparameters map[string]float64) {
	event := trainingStartedEvent{
		ModelId:         modelId,
		ModelType:       modelType,
		DatasetId:       datasetId,
		Hyperparameters: hyperparameters,
		StartedAt:       time.Now().UTC(),
	}
	go t.post("/events/training-started", modelId, event)
}

func (t *HTTPTracker) TrainingFinished(modelId uuid.UUID, status string, metrics map[string]float64, errorMessage string) {
	event := trainingFinishedEvent{
		ModelId:    modelId,
		Status:     status,
		Metrics:    metrics,
		Error:      errorMessage,
		FinishedAt: time.Now().UTC(),
	}
	go t.post("/events/training-finished", modelId, event)
}

func (t *HTTPTracker) post(path string, modelId uuid.UUID, body any) {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	res, err := t.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		slog.Warn("failed to report tracking event", "path", path, "model_id", modelId, "error", err)
		return
	}
	if res.IsError() {
		slog.Warn("tracking server rejected event", "path", path, "model_id", modelId, "status", res.StatusCode())
	}
}
