package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/internal/dataset"
	"github.com/murean5/ML-OPS/internal/messaging"
	"github.com/murean5/ML-OPS/internal/ml"
	"github.com/murean5/ML-OPS/internal/prediction"
	"github.com/murean5/ML-OPS/internal/storage"
	"github.com/murean5/ML-OPS/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUploadSize = 64 << 20 // 64 MiB

// BackendService holds every operation the service exposes. The REST handlers
// and the gRPC adapter are both thin wrappers over the exported *Op methods,
// so the two protocols cannot drift apart.
type BackendService struct {
	db        *gorm.DB
	datasets  *dataset.Registry
	predictor *prediction.Engine
	store     storage.ObjectStore
	publisher messaging.Publisher
	validate  *validator.Validate
}

func NewBackendService(db *gorm.DB, datasets *dataset.Registry, predictor *prediction.Engine, store storage.ObjectStore, publisher messaging.Publisher) *BackendService {
	return &BackendService{
		db:        db,
		datasets:  datasets,
		predictor: predictor,
		store:     store,
		publisher: publisher,
		validate:  validator.New(),
	}
}

func (s *BackendService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(s.Health))

	r.Route("/datasets", func(r chi.Router) {
		r.Get("/", RestHandler(s.ListDatasets))
		r.Post("/upload", RestHandler(s.UploadDataset))
		r.Get("/{dataset_id}", RestHandler(s.GetDataset))
		r.Delete("/{dataset_id}", RestHandler(s.DeleteDataset))
	})

	r.Route("/models", func(r chi.Router) {
		r.Get("/", RestHandler(s.ListModels))
		r.Get("/available", RestHandler(s.AvailableModelTypes))
		r.Post("/train", RestHandler(s.TrainModel))
		r.Get("/{model_id}", RestHandler(s.GetModel))
		r.Delete("/{model_id}", RestHandler(s.DeleteModel))
		r.Post("/{model_id}/predict", RestHandler(s.Predict))
		r.Put("/{model_id}/retrain", RestHandler(s.RetrainModel))
	})
}

func (s *BackendService) Health(r *http.Request) (any, error) {
	return api.HealthResponse{Status: "ok"}, nil
}

func (s *BackendService) AvailableModelTypes(r *http.Request) (any, error) {
	return api.AvailableModelsResponse{ModelTypes: ml.AvailableTypes()}, nil
}

func (s *BackendService) ListDatasets(r *http.Request) (any, error) {
	return s.ListDatasetsOp(r.Context())
}

func (s *BackendService) ListDatasetsOp(ctx context.Context) ([]api.Dataset, error) {
	records, err := s.datasets.List(ctx)
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "error listing datasets")
	}

	datasets := make([]api.Dataset, 0, len(records))
	for _, record := range records {
		datasets = append(datasets, convertDataset(&record))
	}
	return datasets, nil
}

func (s *BackendService) UploadDataset(r *http.Request) (any, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "unable to parse multipart form: %v", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "missing 'file' form field")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "error reading uploaded file")
	}

	format := r.FormValue("format")
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	}

	return s.UploadDatasetOp(r.Context(), header.Filename, format, content)
}

func (s *BackendService) UploadDatasetOp(ctx context.Context, fileName, format string, content []byte) (api.UploadDatasetResponse, error) {
	format = strings.ToLower(format)
	if format != database.FormatCSV && format != database.FormatJSON {
		return api.UploadDatasetResponse{}, CodedErrorf(http.StatusBadRequest, "unsupported dataset format %q, expected csv or json", format)
	}

	record, err := s.datasets.Upload(ctx, fileName, format, content)
	if err != nil {
		if errors.Is(err, dataset.ErrInvalidFormat) || errors.Is(err, dataset.ErrEmptyDataset) {
			return api.UploadDatasetResponse{}, CodedError(http.StatusBadRequest, err)
		}
		slog.Error("error uploading dataset", "error", err)
		return api.UploadDatasetResponse{}, CodedErrorf(http.StatusInternalServerError, "failed to store dataset")
	}

	return api.UploadDatasetResponse{
		DatasetId:   record.Id,
		RowCount:    record.RowCount,
		ColumnCount: record.ColumnCount,
	}, nil
}

func (s *BackendService) GetDataset(r *http.Request) (any, error) {
	datasetId, err := URLParamUUID(r, "dataset_id")
	if err != nil {
		return nil, err
	}
	return s.GetDatasetOp(r.Context(), datasetId)
}

func (s *BackendService) GetDatasetOp(ctx context.Context, datasetId uuid.UUID) (api.Dataset, error) {
	record, err := s.datasets.Get(ctx, datasetId)
	if err != nil {
		if errors.Is(err, dataset.ErrDatasetNotFound) {
			return api.Dataset{}, CodedErrorf(http.StatusNotFound, "dataset %s not found", datasetId)
		}
		return api.Dataset{}, CodedErrorf(http.StatusInternalServerError, "error retrieving dataset record")
	}
	return convertDataset(record), nil
}

func (s *BackendService) DeleteDataset(r *http.Request) (any, error) {
	datasetId, err := URLParamUUID(r, "dataset_id")
	if err != nil {
		return nil, err
	}
	return s.DeleteDatasetOp(r.Context(), datasetId)
}

func (s *BackendService) DeleteDatasetOp(ctx context.Context, datasetId uuid.UUID) (api.DeleteResponse, error) {
	if err := s.datasets.Delete(ctx, datasetId); err != nil {
		if errors.Is(err, dataset.ErrDatasetNotFound) {
			return api.DeleteResponse{}, CodedErrorf(http.StatusNotFound, "dataset %s not found", datasetId)
		}
		return api.DeleteResponse{}, CodedErrorf(http.StatusInternalServerError, "error deleting dataset")
	}
	return api.DeleteResponse{Id: datasetId, Deleted: true}, nil
}

func (s *BackendService) ListModels(r *http.Request) (any, error) {
	query, err := ParseRequestQueryParams[api.ListModelsQuery](r)
	if err != nil {
		return nil, err
	}
	return s.ListModelsOp(r.Context(), query)
}

func (s *BackendService) ListModelsOp(ctx context.Context, query api.ListModelsQuery) ([]api.Model, error) {
	txn := s.db.WithContext(ctx)
	if query.Status != "" {
		txn = txn.Where("status = ?", strings.ToUpper(query.Status))
	}
	if query.ModelType != "" {
		txn = txn.Where("type = ?", query.ModelType)
	}
	if query.DatasetId != uuid.Nil {
		txn = txn.Where("dataset_id = ?", query.DatasetId)
	}

	var records []database.Model
	if err := txn.Order("creation_time asc").Find(&records).Error; err != nil {
		slog.Error("error listing models", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error listing models")
	}

	models := make([]api.Model, 0, len(records))
	for _, record := range records {
		model, err := convertModel(&record)
		if err != nil {
			return nil, CodedErrorf(http.StatusInternalServerError, "error converting model record")
		}
		models = append(models, model)
	}
	return models, nil
}

func (s *BackendService) GetModel(r *http.Request) (any, error) {
	modelId, err := URLParamUUID(r, "model_id")
	if err != nil {
		return nil, err
	}
	return s.GetModelOp(r.Context(), modelId)
}

func (s *BackendService) GetModelOp(ctx context.Context, modelId uuid.UUID) (api.Model, error) {
	record, err := s.getModelRecord(ctx, modelId)
	if err != nil {
		return api.Model{}, err
	}

	model, err := convertModel(record)
	if err != nil {
		return api.Model{}, CodedErrorf(http.StatusInternalServerError, "error converting model record")
	}
	return model, nil
}

func (s *BackendService) TrainModel(r *http.Request) (any, error) {
	req, err := ParseRequest[api.TrainRequest](r)
	if err != nil {
		return nil, err
	}
	return s.TrainModelOp(r.Context(), req)
}

func (s *BackendService) TrainModelOp(ctx context.Context, req api.TrainRequest) (api.TrainResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return api.TrainResponse{}, CodedErrorf(http.StatusUnprocessableEntity, "invalid train request: %v", err)
	}
	return s.submitTraining(ctx, req.ModelType, req.DatasetId, req.Hyperparameters)
}

func (s *BackendService) RetrainModel(r *http.Request) (any, error) {
	modelId, err := URLParamUUID(r, "model_id")
	if err != nil {
		return nil, err
	}

	req, err := ParseRequest[api.RetrainRequest](r)
	if err != nil {
		return nil, err
	}
	return s.RetrainModelOp(r.Context(), modelId, req)
}

// RetrainModelOp creates a new model from an existing one's configuration.
// Overrides in the request replace the source model's dataset or
// hyperparameters; the source model is left untouched.
func (s *BackendService) RetrainModelOp(ctx context.Context, modelId uuid.UUID, req api.RetrainRequest) (api.TrainResponse, error) {
	source, err := s.getModelRecord(ctx, modelId)
	if err != nil {
		return api.TrainResponse{}, err
	}

	datasetId := source.DatasetId
	if req.DatasetId != nil {
		datasetId = *req.DatasetId
	}

	params := req.Hyperparameters
	if params == nil && len(source.Hyperparameters) > 0 {
		if err := json.Unmarshal(source.Hyperparameters, &params); err != nil {
			slog.Error("error decoding stored hyperparameters", "model_id", modelId, "error", err)
			return api.TrainResponse{}, CodedErrorf(http.StatusInternalServerError, "error reading model configuration")
		}
	}

	return s.submitTraining(ctx, source.Type, datasetId, params)
}

func (s *BackendService) submitTraining(ctx context.Context, modelType string, datasetId uuid.UUID, params map[string]float64) (api.TrainResponse, error) {
	// Hyperparameters are validated before any model record exists, so an
	// invalid request never produces a FAILED model.
	if err := ml.ValidateRequest(modelType, params); err != nil {
		var invalid *ml.InvalidHyperparameterError
		if errors.As(err, &invalid) || errors.Is(err, ml.ErrUnknownModelType) {
			return api.TrainResponse{}, CodedError(http.StatusUnprocessableEntity, err)
		}
		return api.TrainResponse{}, CodedErrorf(http.StatusInternalServerError, "error validating train request")
	}

	if _, err := s.datasets.Get(ctx, datasetId); err != nil {
		if errors.Is(err, dataset.ErrDatasetNotFound) {
			return api.TrainResponse{}, CodedErrorf(http.StatusNotFound, "dataset %s not found", datasetId)
		}
		return api.TrainResponse{}, CodedErrorf(http.StatusInternalServerError, "error retrieving dataset record")
	}

	encodedParams, err := json.Marshal(params)
	if err != nil {
		return api.TrainResponse{}, CodedErrorf(http.StatusInternalServerError, "error encoding hyperparameters")
	}

	model := &database.Model{
		Id:              uuid.New(),
		Type:            modelType,
		DatasetId:       datasetId,
		Status:          database.ModelPending,
		Hyperparameters: encodedParams,
		CreationTime:    time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		slog.Error("error creating model record", "error", err)
		return api.TrainResponse{}, CodedErrorf(http.StatusInternalServerError, "failed to create model entry")
	}

	payload := messaging.TrainTaskPayload{ModelId: model.Id}
	if err := s.publisher.PublishTrainTask(ctx, payload); err != nil {
		slog.Error("error publishing train task", "model_id", model.Id, "error", err)
		if _, ferr := database.MarkModelFailed(ctx, s.db, model.Id, "failed to queue training task"); ferr != nil {
			slog.Error("error marking model failed after publish error", "model_id", model.Id, "error", ferr)
		}
		return api.TrainResponse{}, CodedErrorf(http.StatusInternalServerError, "failed to queue training task")
	}

	slog.Info("submitted training job", "model_id", model.Id, "type", modelType, "dataset_id", datasetId)
	return api.TrainResponse{ModelId: model.Id, Status: model.Status}, nil
}

func (s *BackendService) Predict(r *http.Request) (any, error) {
	modelId, err := URLParamUUID(r, "model_id")
	if err != nil {
		return nil, err
	}

	req, err := ParseRequest[api.PredictRequest](r)
	if err != nil {
		return nil, err
	}
	return s.PredictOp(r.Context(), modelId, req.Features)
}

func (s *BackendService) PredictOp(ctx context.Context, modelId uuid.UUID, features [][]float64) (api.PredictResponse, error) {
	if len(features) == 0 {
		return api.PredictResponse{}, CodedErrorf(http.StatusUnprocessableEntity, "at least one feature row is required")
	}

	predictions, err := s.predictor.Predict(ctx, modelId, features)
	if err != nil {
		switch {
		case errors.Is(err, prediction.ErrModelNotFound):
			return api.PredictResponse{}, CodedErrorf(http.StatusNotFound, "model %s not found", modelId)
		case errors.Is(err, prediction.ErrModelNotReady):
			return api.PredictResponse{}, CodedError(http.StatusConflict, err)
		case errors.Is(err, prediction.ErrFeatureShapeMismatch):
			return api.PredictResponse{}, CodedError(http.StatusUnprocessableEntity, err)
		default:
			slog.Error("error running prediction", "model_id", modelId, "error", err)
			return api.PredictResponse{}, CodedErrorf(http.StatusInternalServerError, "error running prediction")
		}
	}

	return api.PredictResponse{ModelId: modelId, Predictions: predictions}, nil
}

func (s *BackendService) DeleteModel(r *http.Request) (any, error) {
	modelId, err := URLParamUUID(r, "model_id")
	if err != nil {
		return nil, err
	}
	return s.DeleteModelOp(r.Context(), modelId)
}

// DeleteModelOp removes the model row first, then its weights and cache
// entry. A training run racing this delete observes the missing row and
// abandons its results instead of recreating them.
func (s *BackendService) DeleteModelOp(ctx context.Context, modelId uuid.UUID) (api.DeleteResponse, error) {
	record, err := s.getModelRecord(ctx, modelId)
	if err != nil {
		return api.DeleteResponse{}, err
	}

	res := s.db.WithContext(ctx).Delete(&database.Model{}, "id = ?", modelId)
	if res.Error != nil {
		slog.Error("error deleting model record", "model_id", modelId, "error", res.Error)
		return api.DeleteResponse{}, CodedErrorf(http.StatusInternalServerError, "error deleting model")
	}
	if res.RowsAffected == 0 {
		return api.DeleteResponse{}, CodedErrorf(http.StatusNotFound, "model %s not found", modelId)
	}

	s.predictor.Invalidate(modelId)

	if record.StorageKey != "" {
		if err := s.store.DeleteObject(ctx, record.StorageKey); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			slog.Error("failed to delete model weights", "model_id", modelId, "key", record.StorageKey, "error", err)
		}
	}

	slog.Info("model deleted", "model_id", modelId)
	return api.DeleteResponse{Id: modelId, Deleted: true}, nil
}

func (s *BackendService) getModelRecord(ctx context.Context, modelId uuid.UUID) (*database.Model, error) {
	var record database.Model
	if err := s.db.WithContext(ctx).First(&record, "id = ?", modelId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "model %s not found", modelId)
		}
		slog.Error("error getting model", "model_id", modelId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving model record")
	}
	return &record, nil
}
