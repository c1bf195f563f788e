package core

import (
	"context"
)

// TextExtractor converts raw document bytes into plain text. The contentType
// hint lets an implementation pick the right parsing strategy. Implementations
// must be safe for concurrent use; handlers call them per request.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, contentType string) (string, error)
}
