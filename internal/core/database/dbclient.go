package db

import (
	"context"

	"github.com/akinlade-dev/Extracta/internal/models"
)

// DbClient defines the persistence operations the archive needs. It abstracts
// Postgres so higher layers never depend on a specific driver.
type DbClient interface {
	InsertExtractionRecord(ctx context.Context, rec *models.ExtractionRecord) error
	GetExtractionRecordByID(ctx context.Context, id string) (*models.ExtractionRecord, error)
	ListExtractionRecords(ctx context.Context, limit int) ([]models.ExtractionRecord, error)

	Close() error
}
