package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/akinlade-dev/Extracta/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

// NewDatabaseClient opens the pool, pings, and bootstraps the schema.
func NewDatabaseClient(ctx context.Context, databaseURL string) (DbClient, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Sensible pool settings for an API service; adjust as needed.
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureBootstrapped(pingCtx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &DatabaseClient{db: sqlDB}, nil
}

func (c *DatabaseClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func (c *DatabaseClient) InsertExtractionRecord(ctx context.Context, rec *models.ExtractionRecord) error {
	if rec == nil {
		return errors.New("nil extraction record")
	}

	fieldsJSON, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	const q = `
		INSERT INTO extraction_records
			(id, file_name, content_type, file_hash, template_name, text_chars, avg_confidence, fields, storage_url, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))
	`
	_, err = c.db.ExecContext(ctx, q,
		rec.ID, rec.FileName, rec.ContentType, rec.FileHash, rec.TemplateName,
		rec.TextChars, rec.AvgConfidence, fieldsJSON, rec.StorageURL, rec.CreatedAt)
	return err
}

func (c *DatabaseClient) GetExtractionRecordByID(ctx context.Context, id string) (*models.ExtractionRecord, error) {
	const q = `
		SELECT id, file_name, content_type, file_hash, template_name, text_chars, avg_confidence, fields, storage_url, created_at
		FROM extraction_records
		WHERE id = $1
	`
	rec, err := scanRecord(c.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *DatabaseClient) ListExtractionRecords(ctx context.Context, limit int) ([]models.ExtractionRecord, error) {
	const q = `
		SELECT id, file_name, content_type, file_hash, template_name, text_chars, avg_confidence, fields, storage_url, created_at
		FROM extraction_records
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := c.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ExtractionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.ExtractionRecord, error) {
	var (
		rec        models.ExtractionRecord
		fieldsJSON []byte
	)
	if err := row.Scan(
		&rec.ID, &rec.FileName, &rec.ContentType, &rec.FileHash, &rec.TemplateName,
		&rec.TextChars, &rec.AvgConfidence, &fieldsJSON, &rec.StorageURL, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(fieldsJSON) > 0 {
		if err := json.Unmarshal(fieldsJSON, &rec.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal fields: %w", err)
		}
	}
	return &rec, nil
}
