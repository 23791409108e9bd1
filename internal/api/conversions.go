package api

import (
	"encoding/json"
	"fmt"

	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/pkg/api"
)

func convertDataset(record *database.Dataset) api.Dataset {
	return api.Dataset{
		Id:           record.Id,
		FileName:     record.FileName,
		Format:       record.Format,
		RowCount:     record.RowCount,
		ColumnCount:  record.ColumnCount,
		SizeBytes:    record.SizeBytes,
		CreationTime: record.CreationTime,
	}
}

func convertModel(record *database.Model) (api.Model, error) {
	model := api.Model{
		Id:           record.Id,
		Type:         record.Type,
		DatasetId:    record.DatasetId,
		Status:       record.Status,
		NumFeatures:  record.NumFeatures,
		Error:        record.Error,
		CreationTime: record.CreationTime,
	}

	if record.CompletionTime.Valid {
		t := record.CompletionTime.Time
		model.CompletionTime = &t
	}

	if len(record.Hyperparameters) > 0 {
		if err := json.Unmarshal(record.Hyperparameters, &model.Hyperparameters); err != nil {
			return api.Model{}, fmt.Errorf("error decoding hyperparameters for model %s: %w", record.Id, err)
		}
	}
	if len(record.Metrics) > 0 {
		if err := json.Unmarshal(record.Metrics, &model.Metrics); err != nil {
			return api.Model{}, fmt.Errorf("error decoding metrics for model %s: %w", record.Id, err)
		}
	}

	return model, nil
}
