package archive

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	db "github.com/akinlade-dev/Extracta/internal/core/database"
	"github.com/akinlade-dev/Extracta/internal/core/objectstore"
	"github.com/akinlade-dev/Extracta/internal/models"
)

// Recorder archives finished extractions through a bounded job queue and a
// small worker pool. Either sink may be nil: with no object client only the
// audit row is written, with no database only the file is stored.
type Recorder struct {
	db   db.DbClient
	obj  objectstore.ObjectClient
	jobs chan Job
}

// NewRecorder constructs the recorder with a bounded job queue (64).
func NewRecorder(dbClient db.DbClient, objClient objectstore.ObjectClient) *Recorder {
	return &Recorder{
		db:   dbClient,
		obj:  objClient,
		jobs: make(chan Job, 64),
	}
}

// Start runs numWorkers goroutines reading from the jobs channel until ctx is
// cancelled.
func (r *Recorder) Start(ctx context.Context, numWorkers int) {
	for w := 1; w <= numWorkers; w++ {
		go func(w int) {
			for {
				select {
				case <-ctx.Done():
					log.Printf("archive: worker %d shutting down", w)
					return
				case job := <-r.jobs:
					if err := r.processOne(job); err != nil {
						log.Printf("archive: record %s failed: %v", job.RecordID, err)
					}
				}
			}
		}(w)
	}
}

// Enqueue schedules a finished extraction for archival. If the queue is full,
// this call blocks until space frees up.
func (r *Recorder) Enqueue(job Job) {
	r.jobs <- job
}

// processOne uploads the original file and writes the audit row. The two
// sinks are independent, so they run concurrently under one errgroup; the
// object URL is known up front from the key.
func (r *Recorder) processOne(job Job) error {
	proctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	storageURL := ""
	key := fmt.Sprintf("%s/%s", job.RecordID, filepath.Base(job.FileName))
	if r.obj != nil {
		storageURL = r.obj.ObjectURL(key)
	}

	g, gctx := errgroup.WithContext(proctx)

	if r.obj != nil {
		g.Go(func() error {
			if _, err := r.obj.UploadFile(gctx, key, job.Payload, job.ContentType); err != nil {
				return fmt.Errorf("upload payload: %w", err)
			}
			return nil
		})
	}

	if r.db != nil {
		g.Go(func() error {
			rec := &models.ExtractionRecord{
				ID:            job.RecordID,
				FileName:      job.FileName,
				ContentType:   job.ContentType,
				FileHash:      job.FileHash,
				TemplateName:  job.TemplateName,
				TextChars:     job.TextChars,
				AvgConfidence: job.AvgConfidence,
				Fields:        job.Fields,
				StorageURL:    storageURL,
				CreatedAt:     time.Now(),
			}
			if err := r.db.InsertExtractionRecord(gctx, rec); err != nil {
				return fmt.Errorf("insert record: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}
