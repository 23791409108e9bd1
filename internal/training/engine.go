package training

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/internal/dataset"
	"github.com/murean5/ML-OPS/internal/messaging"
	"github.com/murean5/ML-OPS/internal/ml"
	"github.com/murean5/ML-OPS/internal/storage"
	"github.com/murean5/ML-OPS/internal/tracking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Engine trains one model per task. It is the only writer of TRAINING,
// COMPLETED and FAILED statuses, and all its writes are UPDATEs: a model
// deleted while training is in flight is never resurrected, the engine just
// abandons the run when it sees no row was touched.
type Engine struct {
	db       *gorm.DB
	store    storage.ObjectStore
	datasets *dataset.Registry
	tracker  tracking.Tracker
}

var _ messaging.TrainTaskHandler = (*Engine)(nil)

func NewEngine(db *gorm.DB, store storage.ObjectStore, datasets *dataset.Registry, tracker tracking.Tracker) *Engine {
	return &Engine{db: db, store: store, datasets: datasets, tracker: tracker}
}

func modelStorageKey(modelId uuid.UUID) string {
	return fmt.Sprintf("models/%s.json", modelId)
}

func (e *Engine) HandleTrainTask(ctx context.Context, payload messaging.TrainTaskPayload) error {
	return e.Run(ctx, payload.ModelId)
}

// Run executes the full training lifecycle for the given model. It returns a
// non-nil error only for infrastructure failures worth redelivering; training
// failures are recorded on the model row and return nil.
func (e *Engine) Run(ctx context.Context, modelId uuid.UUID) error {
	var model database.Model
	if err := e.db.WithContext(ctx).First(&model, "id = ?", modelId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Info("model deleted before training started, skipping", "model_id", modelId)
			return nil
		}
		return fmt.Errorf("error loading model %s: %w", modelId, err)
	}

	found, err := database.UpdateModelStatus(ctx, e.db, modelId, database.ModelTraining)
	if err != nil {
		return fmt.Errorf("error moving model %s to training: %w", modelId, err)
	}
	if !found {
		slog.Info("model deleted before training started, skipping", "model_id", modelId)
		return nil
	}

	params, err := decodeHyperparameters(model.Hyperparameters)
	if err != nil {
		return e.fail(ctx, modelId, fmt.Sprintf("invalid stored hyperparameters: %v", err))
	}

	e.tracker.TrainingStarted(modelId, model.Type, model.DatasetId, params)

	table, err := e.datasets.LoadTable(ctx, model.DatasetId)
	if err != nil {
		return e.failTracked(ctx, modelId, fmt.Sprintf("failed to load dataset %s: %v", model.DatasetId, err))
	}

	estimator, err := ml.NewEstimator(model.Type, params)
	if err != nil {
		return e.failTracked(ctx, modelId, err.Error())
	}

	features, targets := table.Split()
	trainX, trainY, evalX, evalY := ml.SplitTrainEval(features, targets)

	weights, err := estimator.Fit(trainX, trainY)
	if err != nil {
		return e.failTracked(ctx, modelId, err.Error())
	}

	metrics, err := ml.Evaluate(weights, evalX, evalY)
	if err != nil {
		return e.failTracked(ctx, modelId, fmt.Sprintf("evaluation failed: %v", err))
	}

	encoded, err := ml.EncodeWeights(weights)
	if err != nil {
		return e.failTracked(ctx, modelId, fmt.Sprintf("failed to serialize weights: %v", err))
	}

	key := modelStorageKey(modelId)
	if err := e.store.PutObject(ctx, key, bytes.NewReader(encoded)); err != nil {
		return e.failTracked(ctx, modelId, fmt.Sprintf("failed to store weights: %v", err))
	}

	found, err = database.CompleteModel(ctx, e.db, modelId, metrics, key, weights.NumFeatures)
	if err != nil {
		return fmt.Errorf("error completing model %s: %w", modelId, err)
	}
	if !found {
		// Deleted mid-training. Remove the weights we just wrote so no
		// orphaned blob outlives the model.
		slog.Info("model deleted during training, discarding weights", "model_id", modelId)
		if err := e.store.DeleteObject(ctx, key); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			slog.Error("failed to delete orphaned weights", "model_id", modelId, "key", key, "error", err)
		}
		return nil
	}

	e.tracker.TrainingFinished(modelId, database.ModelCompleted, metrics, "")
	slog.Info("model training completed", "model_id", modelId, "metrics", metrics)
	return nil
}

// fail records a terminal FAILED state on the model row. A missing row means
// the model was deleted mid-training, which is not an error.
func (e *Engine) fail(ctx context.Context, modelId uuid.UUID, message string) error {
	found, err := database.MarkModelFailed(ctx, e.db, modelId, message)
	if err != nil {
		return fmt.Errorf("error marking model %s failed: %w", modelId, err)
	}
	if found {
		slog.Info("model training failed", "model_id", modelId, "reason", message)
	} else {
		slog.Info("model deleted during training, dropping failure", "model_id", modelId)
	}
	return nil
}

func (e *Engine) failTracked(ctx context.Context, modelId uuid.UUID, message string) error {
	if err := e.fail(ctx, modelId, message); err != nil {
		return err
	}
	e.tracker.TrainingFinished(modelId, database.ModelFailed, nil, message)
	return nil
}

func decodeHyperparameters(raw []byte) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var params map[string]float64
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, err
	}
	return params, nil
}
