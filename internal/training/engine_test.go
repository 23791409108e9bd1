package training_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/internal/dataset"
	"github.com/murean5/ML-OPS/internal/ml"
	"github.com/murean5/ML-OPS/internal/storage"
	"github.com/murean5/ML-OPS/internal/tracking"
	"github.com/murean5/ML-OPS/internal/training"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type env struct {
	db       *gorm.DB
	store    storage.ObjectStore
	registry *dataset.Registry
	engine   *training.Engine
}

func setup(t *testing.T) *env {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())

	store, err := storage.NewLocalObjectStore(t.TempDir())
	require.NoError(t, err)

	registry := dataset.NewRegistry(db, store)
	engine := training.NewEngine(db, store, registry, tracking.NoopTracker{})

	return &env{db: db, store: store, registry: registry, engine: engine}
}

func (e *env) uploadLinearDataset(t *testing.T) uuid.UUID {
	// Simple y = 2x relationship.
	var sb strings.Builder
	sb.WriteString("x,y\n")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, "%d,%d\n", i, 2*i)
	}

	record, err := e.registry.Upload(context.Background(), "train.csv", "csv", []byte(sb.String()))
	require.NoError(t, err)
	return record.Id
}

func (e *env) createModel(t *testing.T, datasetId uuid.UUID, params map[string]float64) uuid.UUID {
	encoded, err := json.Marshal(params)
	require.NoError(t, err)

	model := &database.Model{
		Id:              uuid.New(),
		Type:            ml.TypeLinear,
		DatasetId:       datasetId,
		Status:          database.ModelPending,
		Hyperparameters: encoded,
		CreationTime:    time.Now(),
	}
	require.NoError(t, e.db.Create(model).Error)
	return model.Id
}

func (e *env) getModel(t *testing.T, modelId uuid.UUID) *database.Model {
	var model database.Model
	require.NoError(t, e.db.First(&model, "id = ?", modelId).Error)
	return &model
}

func TestTrainingCompletesModel(t *testing.T) {
	e := setup(t)
	datasetId := e.uploadLinearDataset(t)
	modelId := e.createModel(t, datasetId, map[string]float64{"max_iter": 500})

	require.NoError(t, e.engine.Run(context.Background(), modelId))

	model := e.getModel(t, modelId)
	assert.Equal(t, database.ModelCompleted, model.Status)
	assert.Equal(t, 1, model.NumFeatures)
	assert.True(t, model.CompletionTime.Valid)
	assert.NotEmpty(t, model.StorageKey)

	var metrics map[string]float64
	require.NoError(t, json.Unmarshal(model.Metrics, &metrics))
	assert.Contains(t, metrics, ml.MetricR2)
	assert.Contains(t, metrics, ml.MetricRMSE)

	// Weights must be fetchable and usable.
	content, err := e.store.GetObject(context.Background(), model.StorageKey)
	require.NoError(t, err)
	weights, err := ml.DecodeWeights(content)
	require.NoError(t, err)
	assert.Equal(t, ml.TypeLinear, weights.Type)
}

func TestTrainingIsRepeatable(t *testing.T) {
	e := setup(t)
	datasetId := e.uploadLinearDataset(t)

	first := e.createModel(t, datasetId, nil)
	second := e.createModel(t, datasetId, nil)

	require.NoError(t, e.engine.Run(context.Background(), first))
	require.NoError(t, e.engine.Run(context.Background(), second))

	m1, m2 := e.getModel(t, first), e.getModel(t, second)
	assert.Equal(t, database.ModelCompleted, m1.Status)
	assert.JSONEq(t, string(m1.Metrics), string(m2.Metrics))
}

func TestTrainingFailsOnMissingDataset(t *testing.T) {
	e := setup(t)
	modelId := e.createModel(t, uuid.New(), nil)

	require.NoError(t, e.engine.Run(context.Background(), modelId))

	model := e.getModel(t, modelId)
	assert.Equal(t, database.ModelFailed, model.Status)
	assert.NotEmpty(t, model.Error)
	assert.True(t, model.CompletionTime.Valid)
	assert.Empty(t, model.StorageKey)
}

func TestTrainingSkipsDeletedModel(t *testing.T) {
	e := setup(t)
	datasetId := e.uploadLinearDataset(t)
	modelId := e.createModel(t, datasetId, nil)

	require.NoError(t, e.db.Delete(&database.Model{}, "id = ?", modelId).Error)

	// A deleted model is never resurrected, the run is a no-op.
	require.NoError(t, e.engine.Run(context.Background(), modelId))

	var count int64
	require.NoError(t, e.db.Model(&database.Model{}).Where("id = ?", modelId).Count(&count).Error)
	assert.Zero(t, count)
}

// deleteModelOnPutStore deletes the model row right after the weights blob is
// written, simulating a delete request landing while training is in flight.
type deleteModelOnPutStore struct {
	storage.ObjectStore
	onPut func()
}

func (s *deleteModelOnPutStore) PutObject(ctx context.Context, key string, content io.Reader) error {
	if err := s.ObjectStore.PutObject(ctx, key, content); err != nil {
		return err
	}
	s.onPut()
	return nil
}

func TestTrainingDiscardsWeightsWhenModelDeletedMidRun(t *testing.T) {
	e := setup(t)
	datasetId := e.uploadLinearDataset(t)
	modelId := e.createModel(t, datasetId, nil)

	store := &deleteModelOnPutStore{ObjectStore: e.store, onPut: func() {
		require.NoError(t, e.db.Delete(&database.Model{}, "id = ?", modelId).Error)
	}}
	engine := training.NewEngine(e.db, store, e.registry, tracking.NoopTracker{})

	require.NoError(t, engine.Run(context.Background(), modelId))

	// Delete wins: the row stays gone and the written weights are removed.
	var count int64
	require.NoError(t, e.db.Model(&database.Model{}).Where("id = ?", modelId).Count(&count).Error)
	assert.Zero(t, count)

	_, err := e.store.GetObject(context.Background(), fmt.Sprintf("models/%s.json", modelId))
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestTrainingFailsOnBadStoredHyperparameters(t *testing.T) {
	e := setup(t)
	datasetId := e.uploadLinearDataset(t)

	model := &database.Model{
		Id:              uuid.New(),
		Type:            ml.TypeLinear,
		DatasetId:       datasetId,
		Status:          database.ModelPending,
		Hyperparameters: []byte(`{"alpha": -5}`),
		CreationTime:    time.Now(),
	}
	require.NoError(t, e.db.Create(model).Error)

	require.NoError(t, e.engine.Run(context.Background(), model.Id))

	stored := e.getModel(t, model.Id)
	assert.Equal(t, database.ModelFailed, stored.Status)
	assert.Contains(t, stored.Error, "alpha")
}
