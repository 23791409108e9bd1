package api

import (
	"time"

	"github.com/google/uuid"
)

type Dataset struct {
	Id uuid.UUID

	FileName string
	Format   string

	RowCount    int
	ColumnCount int
	SizeBytes   int64

	CreationTime time.Time
}

type Model struct {
	Id        uuid.UUID
	Type      string
	DatasetId uuid.UUID
	Status    string

	Hyperparameters map[string]float64 `json:"Hyperparameters,omitempty"`
	Metrics         map[string]float64 `json:"Metrics,omitempty"`

	NumFeatures int
	Error       string `json:"Error,omitempty"`

	CreationTime   time.Time
	CompletionTime *time.Time `json:"CompletionTime,omitempty"`
}

type TrainRequest struct {
	ModelType string    `validate:"required"`
	DatasetId uuid.UUID `validate:"required"`

	Hyperparameters map[string]float64
}

type TrainResponse struct {
	ModelId uuid.UUID
	Status  string
}

type RetrainRequest struct {
	DatasetId *uuid.UUID

	Hyperparameters map[string]float64
}

type PredictRequest struct {
	Features [][]float64 `validate:"required,min=1"`
}

type PredictResponse struct {
	ModelId     uuid.UUID
	Predictions []float64
}

type UploadDatasetResponse struct {
	DatasetId uuid.UUID

	RowCount    int
	ColumnCount int
}

type DeleteResponse struct {
	Id      uuid.UUID
	Deleted bool
}

type ListModelsQuery struct {
	Status    string    `schema:"status"`
	ModelType string    `schema:"model_type"`
	DatasetId uuid.UUID `schema:"dataset_id"`
}

type AvailableModelsResponse struct {
	ModelTypes []string
}

type HealthResponse struct {
	Status string
}
