package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	backend "github.com/murean5/ML-OPS/internal/api"
	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/internal/dataset"
	"github.com/murean5/ML-OPS/internal/messaging"
	"github.com/murean5/ML-OPS/internal/ml"
	"github.com/murean5/ML-OPS/internal/prediction"
	"github.com/murean5/ML-OPS/internal/storage"
	"github.com/murean5/ML-OPS/internal/tracking"
	"github.com/murean5/ML-OPS/internal/training"
	"github.com/murean5/ML-OPS/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	store   storage.ObjectStore
	router  *chi.Mux
	service *backend.BackendService
	queue   *messaging.InMemoryQueue
}

func createDB(t *testing.T, create ...any) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.GetMigrator(db).Migrate())

	for _, c := range create {
		require.NoError(t, db.Create(c).Error)
	}
	return db
}

// createEnv wires the full service with an in-memory queue and an in-process
// worker, so submitted training jobs actually run.
func createEnv(t *testing.T, create ...any) *testEnv {
	db := createDB(t, create...)

	store, err := storage.NewLocalObjectStore(t.TempDir())
	require.NoError(t, err)

	datasets := dataset.NewRegistry(db, store)
	predictor := prediction.NewEngine(db, store)
	queue := messaging.NewInMemoryQueue()

	engine := training.NewEngine(db, store, datasets, tracking.NoopTracker{})
	worker := messaging.NewWorker(queue, engine, 1)
	worker.Start(context.Background())
	t.Cleanup(func() {
		queue.Close()
		worker.Wait()
	})

	service := backend.NewBackendService(db, datasets, predictor, store, queue)
	router := chi.NewRouter()
	service.AddRoutes(router)

	return &testEnv{db: db, store: store, router: router, service: service, queue: queue}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) uploadDataset(t *testing.T, fileName, content string) uuid.UUID {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/datasets/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res api.UploadDatasetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res.DatasetId
}

func (e *testEnv) trainAndWait(t *testing.T, req api.TrainRequest) uuid.UUID {
	rec := e.doJSON(t, http.MethodPost, "/models/train", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res api.TrainResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, database.ModelPending, res.Status)

	e.waitForTerminal(t, res.ModelId)
	return res.ModelId
}

func (e *testEnv) waitForTerminal(t *testing.T, modelId uuid.UUID) {
	require.Eventually(t, func() bool {
		var model database.Model
		if err := e.db.First(&model, "id = ?", modelId).Error; err != nil {
			return false
		}
		return model.Status == database.ModelCompleted || model.Status == database.ModelFailed
	}, 10*time.Second, 50*time.Millisecond)
}

func linearCSV(n int) string {
	var sb strings.Builder
	sb.WriteString("x,y\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%d,%d\n", i, 3*i+1)
	}
	return sb.String()
}

func TestHealth(t *testing.T) {
	e := createEnv(t)

	rec := e.doJSON(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res api.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ok", res.Status)
}

func TestAvailableModelTypes(t *testing.T) {
	e := createEnv(t)

	rec := e.doJSON(t, http.MethodGet, "/models/available", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res api.AvailableModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.ElementsMatch(t, []string{ml.TypeLinear, ml.TypeRandomForest}, res.ModelTypes)
}

func TestDatasetLifecycle(t *testing.T) {
	e := createEnv(t)

	datasetId := e.uploadDataset(t, "train.csv", linearCSV(10))

	rec := e.doJSON(t, http.MethodGet, "/datasets/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var list []api.Dataset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, datasetId, list[0].Id)
	assert.Equal(t, "train.csv", list[0].FileName)
	assert.Equal(t, 10, list[0].RowCount)
	assert.Equal(t, 2, list[0].ColumnCount)

	rec = e.doJSON(t, http.MethodGet, "/datasets/"+datasetId.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.doJSON(t, http.MethodDelete, "/datasets/"+datasetId.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var deleted api.DeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.True(t, deleted.Deleted)

	rec = e.doJSON(t, http.MethodGet, "/datasets/"+datasetId.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadDatasetRejectsBadContent(t *testing.T) {
	e := createEnv(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "bad.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("x,y\n1,nope\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/datasets/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrainPredictWorkflow(t *testing.T) {
	e := createEnv(t)

	datasetId := e.uploadDataset(t, "train.csv", linearCSV(20))
	modelId := e.trainAndWait(t, api.TrainRequest{ModelType: ml.TypeLinear, DatasetId: datasetId})

	rec := e.doJSON(t, http.MethodGet, "/models/"+modelId.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var model api.Model
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &model))
	assert.Equal(t, database.ModelCompleted, model.Status)
	assert.Equal(t, 1, model.NumFeatures)
	assert.Contains(t, model.Metrics, ml.MetricR2)
	require.NotNil(t, model.CompletionTime)

	rec = e.doJSON(t, http.MethodPost, "/models/"+modelId.String()+"/predict", api.PredictRequest{
		Features: [][]float64{{5}, {10}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var prediction api.PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prediction))
	require.Len(t, prediction.Predictions, 2)
	assert.InDelta(t, 16.0, prediction.Predictions[0], 1.0)
	assert.InDelta(t, 31.0, prediction.Predictions[1], 1.0)
}

func TestTrainRandomForest(t *testing.T) {
	e := createEnv(t)

	datasetId := e.uploadDataset(t, "train.csv", linearCSV(20))
	modelId := e.trainAndWait(t, api.TrainRequest{
		ModelType:       ml.TypeRandomForest,
		DatasetId:       datasetId,
		Hyperparameters: map[string]float64{"n_estimators": 10, "max_depth": 5},
	})

	rec := e.doJSON(t, http.MethodGet, "/models/"+modelId.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var model api.Model
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &model))
	assert.Equal(t, database.ModelCompleted, model.Status)
	assert.Equal(t, float64(10), model.Hyperparameters["n_estimators"])
}

func TestTrainRejectsInvalidHyperparameters(t *testing.T) {
	e := createEnv(t)
	datasetId := e.uploadDataset(t, "train.csv", linearCSV(10))

	rec := e.doJSON(t, http.MethodPost, "/models/train", api.TrainRequest{
		ModelType:       ml.TypeRandomForest,
		DatasetId:       datasetId,
		Hyperparameters: map[string]float64{"n_estimators": -1},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "n_estimators")

	// No model record is created for an invalid request.
	var count int64
	require.NoError(t, e.db.Model(&database.Model{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTrainRejectsUnknownModelType(t *testing.T) {
	e := createEnv(t)
	datasetId := e.uploadDataset(t, "train.csv", linearCSV(10))

	rec := e.doJSON(t, http.MethodPost, "/models/train", api.TrainRequest{
		ModelType: "svm",
		DatasetId: datasetId,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTrainRejectsMissingDataset(t *testing.T) {
	e := createEnv(t)

	rec := e.doJSON(t, http.MethodPost, "/models/train", api.TrainRequest{
		ModelType: ml.TypeLinear,
		DatasetId: uuid.New(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPredictOnPendingModel(t *testing.T) {
	modelId := uuid.New()
	e := createEnv(t, &database.Model{
		Id:           modelId,
		Type:         ml.TypeLinear,
		DatasetId:    uuid.New(),
		Status:       database.ModelPending,
		CreationTime: time.Now(),
	})

	rec := e.doJSON(t, http.MethodPost, "/models/"+modelId.String()+"/predict", api.PredictRequest{
		Features: [][]float64{{1}},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPredictShapeMismatch(t *testing.T) {
	e := createEnv(t)

	datasetId := e.uploadDataset(t, "train.csv", linearCSV(20))
	modelId := e.trainAndWait(t, api.TrainRequest{ModelType: ml.TypeLinear, DatasetId: datasetId})

	rec := e.doJSON(t, http.MethodPost, "/models/"+modelId.String()+"/predict", api.PredictRequest{
		Features: [][]float64{{1, 2, 3}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPredictUnknownModel(t *testing.T) {
	e := createEnv(t)

	rec := e.doJSON(t, http.MethodPost, "/models/"+uuid.NewString()+"/predict", api.PredictRequest{
		Features: [][]float64{{1}},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRetrainCreatesNewModel(t *testing.T) {
	e := createEnv(t)

	datasetId := e.uploadDataset(t, "train.csv", linearCSV(20))
	originalId := e.trainAndWait(t, api.TrainRequest{
		ModelType:       ml.TypeLinear,
		DatasetId:       datasetId,
		Hyperparameters: map[string]float64{"max_iter": 200},
	})

	rec := e.doJSON(t, http.MethodPut, "/models/"+originalId.String()+"/retrain", api.RetrainRequest{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res api.TrainResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEqual(t, originalId, res.ModelId)

	e.waitForTerminal(t, res.ModelId)

	rec = e.doJSON(t, http.MethodGet, "/models/"+res.ModelId.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var retrained api.Model
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &retrained))
	assert.Equal(t, database.ModelCompleted, retrained.Status)
	assert.Equal(t, float64(200), retrained.Hyperparameters["max_iter"])

	// The original model is untouched.
	rec = e.doJSON(t, http.MethodGet, "/models/"+originalId.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListModelsWithFilters(t *testing.T) {
	datasetId := uuid.New()
	e := createEnv(t,
		&database.Model{Id: uuid.New(), Type: ml.TypeLinear, DatasetId: datasetId, Status: database.ModelCompleted, CreationTime: time.Now()},
		&database.Model{Id: uuid.New(), Type: ml.TypeRandomForest, DatasetId: datasetId, Status: database.ModelFailed, CreationTime: time.Now()},
		&database.Model{Id: uuid.New(), Type: ml.TypeLinear, DatasetId: uuid.New(), Status: database.ModelCompleted, CreationTime: time.Now()},
	)

	rec := e.doJSON(t, http.MethodGet, "/models/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []api.Model
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	rec = e.doJSON(t, http.MethodGet, "/models/?status=completed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var completed []api.Model
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	assert.Len(t, completed, 2)

	rec = e.doJSON(t, http.MethodGet, "/models/?model_type="+ml.TypeRandomForest, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var forests []api.Model
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forests))
	assert.Len(t, forests, 1)

	rec = e.doJSON(t, http.MethodGet, "/models/?dataset_id="+datasetId.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var byDataset []api.Model
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &byDataset))
	assert.Len(t, byDataset, 2)
}

func TestDeleteModelRemovesWeights(t *testing.T) {
	e := createEnv(t)

	datasetId := e.uploadDataset(t, "train.csv", linearCSV(20))
	modelId := e.trainAndWait(t, api.TrainRequest{ModelType: ml.TypeLinear, DatasetId: datasetId})

	var model database.Model
	require.NoError(t, e.db.First(&model, "id = ?", modelId).Error)
	require.NotEmpty(t, model.StorageKey)

	rec := e.doJSON(t, http.MethodDelete, "/models/"+modelId.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.doJSON(t, http.MethodGet, "/models/"+modelId.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, err := e.store.GetObject(context.Background(), model.StorageKey)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestInvalidUUIDParam(t *testing.T) {
	e := createEnv(t)

	rec := e.doJSON(t, http.MethodGet, "/models/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
