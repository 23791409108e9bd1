package prediction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/internal/ml"
	"github.com/murean5/ML-OPS/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrModelNotFound        = errors.New("model not found")
	ErrModelNotReady        = errors.New("model is not ready for prediction")
	ErrFeatureShapeMismatch = errors.New("feature shape mismatch")
)

// Engine serves predictions from completed models. Deserialized weights are
// cached in memory after the first use; the cache entry is invalidated when
// the model is deleted.
type Engine struct {
	db    *gorm.DB
	store storage.ObjectStore

	mu    sync.RWMutex
	cache map[uuid.UUID]*ml.Weights
}

func NewEngine(db *gorm.DB, store storage.ObjectStore) *Engine {
	return &Engine{
		db:    db,
		store: store,
		cache: make(map[uuid.UUID]*ml.Weights),
	}
}

// Predict runs inference for one or more feature rows. Every row must match
// the model's feature count exactly; prediction is all-or-nothing.
func (e *Engine) Predict(ctx context.Context, modelId uuid.UUID, rows [][]float64) ([]float64, error) {
	var model database.Model
	if err := e.db.WithContext(ctx).First(&model, "id = ?", modelId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelId)
		}
		return nil, fmt.Errorf("error loading model %s: %w", modelId, err)
	}

	if model.Status != database.ModelCompleted {
		return nil, fmt.Errorf("%w: model %s has status %s", ErrModelNotReady, modelId, model.Status)
	}

	for i, row := range rows {
		if len(row) != model.NumFeatures {
			return nil, fmt.Errorf("%w: row %d has %d features, model expects %d",
				ErrFeatureShapeMismatch, i, len(row), model.NumFeatures)
		}
	}

	weights, err := e.loadWeights(ctx, &model)
	if err != nil {
		return nil, err
	}

	predictions, err := ml.Predict(weights, rows)
	if err != nil {
		return nil, fmt.Errorf("error running prediction for model %s: %w", modelId, err)
	}
	return predictions, nil
}

func (e *Engine) loadWeights(ctx context.Context, model *database.Model) (*ml.Weights, error) {
	e.mu.RLock()
	weights, ok := e.cache[model.Id]
	e.mu.RUnlock()
	if ok {
		return weights, nil
	}

	data, err := e.store.GetObject(ctx, model.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: weights for model %s are missing", ErrModelNotReady, model.Id)
		}
		return nil, fmt.Errorf("error fetching weights for model %s: %w", model.Id, err)
	}

	weights, err = ml.DecodeWeights(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding weights for model %s: %w", model.Id, err)
	}

	e.mu.Lock()
	e.cache[model.Id] = weights
	e.mu.Unlock()

	slog.Info("model weights cached", "model_id", model.Id)
	return weights, nil
}

// Invalidate drops cached weights for a model. Called on delete and retrain.
func (e *Engine) Invalidate(modelId uuid.UUID) {
	e.mu.Lock()
	delete(e.cache, modelId)
	e.mu.Unlock()
}
