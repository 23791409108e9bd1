package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDatasetNotFound = errors.New("dataset not found")

// Registry is the authoritative record of uploaded datasets. Raw bytes live
// in the artifact store under the record's StorageKey; the gorm row is the
// existence record.
type Registry struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewRegistry(db *gorm.DB, store storage.ObjectStore) *Registry {
	return &Registry{db: db, store: store}
}

func storageKey(id uuid.UUID, format string) string {
	return fmt.Sprintf("datasets/%s.%s", id, format)
}

// Upload validates and parses the file, stores the raw bytes under a fresh
// key, and creates the registry row. The blob is written first so a row never
// references a missing object; if the row insert fails the blob is removed
// again.
func (r *Registry) Upload(ctx context.Context, fileName, format string, content []byte) (*database.Dataset, error) {
	table, err := Parse(format, content)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	record := &database.Dataset{
		Id:           id,
		FileName:     fileName,
		Format:       format,
		StorageKey:   storageKey(id, format),
		RowCount:     len(table.Rows),
		ColumnCount:  len(table.Columns),
		SizeBytes:    int64(len(content)),
		CreationTime: time.Now().UTC(),
	}

	if err := r.store.PutObject(ctx, record.StorageKey, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to store dataset file: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if delErr := r.store.DeleteObject(ctx, record.StorageKey); delErr != nil {
			slog.Error("failed to clean up dataset blob after registry error", "key", record.StorageKey, "error", delErr)
		}
		return nil, fmt.Errorf("failed to create dataset record: %w", err)
	}

	slog.Info("dataset uploaded", "dataset_id", record.Id, "rows", record.RowCount, "columns", record.ColumnCount)
	return record, nil
}

// List returns all datasets in insertion order.
func (r *Registry) List(ctx context.Context) ([]database.Dataset, error) {
	var datasets []database.Dataset
	if err := r.db.WithContext(ctx).Order("creation_time asc").Find(&datasets).Error; err != nil {
		return nil, fmt.Errorf("error listing datasets: %w", err)
	}
	return datasets, nil
}

func (r *Registry) Get(ctx context.Context, id uuid.UUID) (*database.Dataset, error) {
	var record database.Dataset
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, id)
		}
		return nil, fmt.Errorf("error retrieving dataset record: %w", err)
	}
	return &record, nil
}

// Delete removes the registry row and the backing blob. The row goes first so
// no caller can observe a dataset whose bytes are already gone; a failed blob
// delete only leaves an orphaned object behind, which is logged.
func (r *Registry) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&database.Dataset{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("error deleting dataset record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, id)
	}

	if err := r.store.DeleteObject(ctx, record.StorageKey); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		slog.Error("failed to delete dataset blob", "dataset_id", id, "key", record.StorageKey, "error", err)
	}

	slog.Info("dataset deleted", "dataset_id", id)
	return nil
}

// LoadTable fetches and parses a dataset for training.
func (r *Registry) LoadTable(ctx context.Context, id uuid.UUID) (*Table, error) {
	record, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := r.store.GetObject(ctx, record.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset file: %w", err)
	}

	return Parse(record.Format, content)
}
