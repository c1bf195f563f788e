package objectstore

import (
	"context"
)

// ObjectClient defines interactions with S3 or any object storage. It's
// abstract so AWS can be swapped for MinIO, GCP, etc. easily.
type ObjectClient interface {
	UploadFile(ctx context.Context, key string, data []byte, contentType string) (url string, err error)
	GetFile(ctx context.Context, key string) ([]byte, error)
	DeleteFile(ctx context.Context, key string) error

	// ObjectURL returns the public URL an object will have under key,
	// without touching the network.
	ObjectURL(key string) string
}
