package textextract

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"github.com/akinlade-dev/Extracta/internal/core"
)

// When the primary converter yields fewer stripped characters than this, the
// document likely has an unusual text layer and the fallback reader is tried.
const fallbackThreshold = 100

var _ core.TextExtractor = (*DocconvExtractor)(nil)

// DocconvExtractor extracts text with docconv first and falls back to a pure
// Go PDF text reader when docconv fails or returns next to nothing (docconv
// shells out to pdftotext, which is not installed everywhere).
type DocconvExtractor struct {
	useReadability bool
}

func NewDocconvExtractor() *DocconvExtractor {
	return &DocconvExtractor{useReadability: false}
}

func (e *DocconvExtractor) ExtractText(ctx context.Context, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var text string
	res, err := docconv.Convert(bytes.NewReader(data), contentType, e.useReadability)
	if err != nil {
		log.Printf("docconv: extraction failed for content type '%s': %v", contentType, err)
	} else if res != nil {
		text = res.Body
	}

	if len(strings.TrimSpace(text)) < fallbackThreshold {
		fallback, ferr := pdfPageText(data)
		if ferr == nil && strings.TrimSpace(fallback) != "" {
			return fallback, nil
		}
		if strings.TrimSpace(text) == "" {
			if err != nil {
				return "", fmt.Errorf("could not extract text: %w", err)
			}
			if ferr != nil {
				return "", fmt.Errorf("could not extract text: %w", ferr)
			}
			return "", fmt.Errorf("could not extract text: document has no text layer")
		}
	}

	return text, nil
}

// pdfPageText reads the PDF text layer page by page. Pages that cannot be
// decoded are skipped rather than failing the whole document.
func pdfPageText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
