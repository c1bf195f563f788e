package archive

import (
	"context"

	"github.com/akinlade-dev/Extracta/internal/models"
)

// Job carries everything needed to archive one finished extraction: the audit
// fields for the database row and the original payload for object storage.
type Job struct {
	RecordID      string
	FileName      string
	ContentType   string
	FileHash      string
	TemplateName  string
	TextChars     int
	AvgConfidence float64
	Fields        map[string]models.FieldResult
	Payload       []byte
}

// Archiver persists extraction runs off the request path. Archiving is
// best-effort: a failed job never affects the response already sent.
type Archiver interface {
	Start(ctx context.Context, numWorkers int)
	Enqueue(job Job)
}
