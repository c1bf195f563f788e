package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinlade-dev/Extracta/internal/models"
)

type stubDbClient struct {
	records []models.ExtractionRecord
	err     error
}

func (s *stubDbClient) InsertExtractionRecord(ctx context.Context, rec *models.ExtractionRecord) error {
	s.records = append(s.records, *rec)
	return s.err
}

func (s *stubDbClient) GetExtractionRecordByID(ctx context.Context, id string) (*models.ExtractionRecord, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i], nil
		}
	}
	return nil, nil
}

func (s *stubDbClient) ListExtractionRecords(ctx context.Context, limit int) ([]models.ExtractionRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.records) > limit {
		return s.records[:limit], nil
	}
	return s.records, nil
}

func (s *stubDbClient) Close() error { return nil }

func TestListExtractions(t *testing.T) {
	dbc := &stubDbClient{records: []models.ExtractionRecord{
		{
			ID:            "11111111-1111-1111-1111-111111111111",
			FileName:      "invoice.pdf",
			TemplateName:  "invoice_v1",
			AvgConfidence: 0.9,
			CreatedAt:     time.Now(),
		},
	}}
	h := NewRecordsHandler(dbc)

	req := httptest.NewRequest(http.MethodGet, "/extractions", nil)
	rec := httptest.NewRecorder()
	h.ListExtractions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out []models.ExtractionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "invoice_v1", out[0].TemplateName)
}

func TestListExtractionsDatabaseError(t *testing.T) {
	h := NewRecordsHandler(&stubDbClient{err: fmt.Errorf("connection reset")})

	req := httptest.NewRequest(http.MethodGet, "/extractions", nil)
	rec := httptest.NewRecorder()
	h.ListExtractions(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
