package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ModelPending   string = "PENDING"
	ModelTraining  string = "TRAINING"
	ModelCompleted string = "COMPLETED"
	ModelFailed    string = "FAILED"
)

const (
	FormatCSV  string = "csv"
	FormatJSON string = "json"
)

type Dataset struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	FileName string
	Format   string `gorm:"size:10;not null"`

	// Key of the raw file in the artifact store. Immutable once set.
	StorageKey string `gorm:"not null"`

	RowCount    int
	ColumnCount int
	SizeBytes   int64

	CreationTime time.Time
}

type Model struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Type string `gorm:"size:20;not null"`

	// Not a foreign key: datasets may be deleted while models trained from
	// them stay usable for prediction.
	DatasetId uuid.UUID `gorm:"type:uuid"`

	Status string `gorm:"size:20;not null"`

	Hyperparameters datatypes.JSON `gorm:"type:jsonb"` // {"name": value}
	Metrics         datatypes.JSON `gorm:"type:jsonb"` // set only when COMPLETED

	// Key of the serialized weights in the artifact store; set only when
	// the model reaches COMPLETED.
	StorageKey  string
	NumFeatures int

	Error string // set only when FAILED

	CreationTime   time.Time
	CompletionTime sql.NullTime
}
