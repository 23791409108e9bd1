package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The helpers below only ever UPDATE existing rows and report whether a row
// was touched. A model deleted mid-training therefore stays deleted: the
// training engine observes found == false and aborts instead of re-creating
// the record.

func UpdateModelStatus(ctx context.Context, txn *gorm.DB, modelId uuid.UUID, status string) (bool, error) {
	updates := map[string]any{"status": status}
	if status == ModelCompleted || status == ModelFailed {
		updates["completion_time"] = time.Now().UTC()
	}

	res := txn.WithContext(ctx).Model(&Model{}).Where("id = ?", modelId).Updates(updates)
	if res.Error != nil {
		slog.Error("error updating model status", "model_id", modelId, "status", status, "error", res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func MarkModelFailed(ctx context.Context, txn *gorm.DB, modelId uuid.UUID, errorMessage string) (bool, error) {
	res := txn.WithContext(ctx).Model(&Model{}).Where("id = ?", modelId).Updates(map[string]any{
		"status":          ModelFailed,
		"error":           errorMessage,
		"completion_time": time.Now().UTC(),
	})
	if res.Error != nil {
		slog.Error("error marking model failed", "model_id", modelId, "error", res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func CompleteModel(ctx context.Context, txn *gorm.DB, modelId uuid.UUID, metrics map[string]float64, storageKey string, numFeatures int) (bool, error) {
	encoded, err := json.Marshal(metrics)
	if err != nil {
		return false, fmt.Errorf("could not marshal metrics: %w", err)
	}

	res := txn.WithContext(ctx).Model(&Model{}).Where("id = ?", modelId).Updates(map[string]any{
		"status":          ModelCompleted,
		"metrics":         encoded,
		"storage_key":     storageKey,
		"num_features":    numFeatures,
		"completion_time": time.Now().UTC(),
	})
	if res.Error != nil {
		slog.Error("error completing model", "model_id", modelId, "error", res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
