package archive

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinlade-dev/Extracta/internal/models"
)

type fakeDb struct {
	mu       sync.Mutex
	inserted []models.ExtractionRecord
	done     chan struct{}
}

func (f *fakeDb) InsertExtractionRecord(ctx context.Context, rec *models.ExtractionRecord) error {
	f.mu.Lock()
	f.inserted = append(f.inserted, *rec)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}

func (f *fakeDb) GetExtractionRecordByID(ctx context.Context, id string) (*models.ExtractionRecord, error) {
	return nil, nil
}

func (f *fakeDb) ListExtractionRecords(ctx context.Context, limit int) ([]models.ExtractionRecord, error) {
	return nil, nil
}

func (f *fakeDb) Close() error { return nil }

type fakeObj struct {
	mu       sync.Mutex
	uploaded map[string][]byte
}

func (f *fakeObj) UploadFile(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploaded == nil {
		f.uploaded = make(map[string][]byte)
	}
	f.uploaded[key] = data
	return f.ObjectURL(key), nil
}

func (f *fakeObj) GetFile(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (f *fakeObj) DeleteFile(ctx context.Context, key string) error        { return nil }

func (f *fakeObj) ObjectURL(key string) string {
	return "https://test-bucket.s3.test.amazonaws.com/" + key
}

func TestRecorderArchivesJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbc := &fakeDb{done: make(chan struct{}, 1)}
	obj := &fakeObj{}

	rec := NewRecorder(dbc, obj)
	rec.Start(ctx, 1)

	rec.Enqueue(Job{
		RecordID:      "rec-1",
		FileName:      "invoice.pdf",
		ContentType:   "application/pdf",
		FileHash:      "abc123",
		TemplateName:  "invoice_v1",
		TextChars:     120,
		AvgConfidence: 0.85,
		Fields: map[string]models.FieldResult{
			"total_amount": {Value: "1250.00", Confidence: 0.9},
		},
		Payload: []byte("%PDF"),
	})

	select {
	case <-dbc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("archive job was not processed")
	}

	dbc.mu.Lock()
	defer dbc.mu.Unlock()
	require.Len(t, dbc.inserted, 1)
	row := dbc.inserted[0]
	assert.Equal(t, "rec-1", row.ID)
	assert.Equal(t, "abc123", row.FileHash)
	assert.Equal(t, "https://test-bucket.s3.test.amazonaws.com/rec-1/invoice.pdf", row.StorageURL)
	assert.Equal(t, "1250.00", row.Fields["total_amount"].Value)

	obj.mu.Lock()
	defer obj.mu.Unlock()
	assert.Equal(t, []byte("%PDF"), obj.uploaded["rec-1/invoice.pdf"])
}

func TestRecorderWithoutObjectStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbc := &fakeDb{done: make(chan struct{}, 1)}
	rec := NewRecorder(dbc, nil)
	rec.Start(ctx, 1)

	rec.Enqueue(Job{RecordID: "rec-2", FileName: "a.pdf"})

	select {
	case <-dbc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("archive job was not processed")
	}

	dbc.mu.Lock()
	defer dbc.mu.Unlock()
	require.Len(t, dbc.inserted, 1)
	assert.Equal(t, "", dbc.inserted[0].StorageURL)
}
