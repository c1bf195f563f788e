package models

import (
	"time"
)

// FieldSpec is one field's extraction rule inside a template.
//
// Pattern must be a valid regular expression; a named capture group called
// "value" marks the substring to extract. Without it the engine falls back to
// capture group 1, then the whole match.
type FieldSpec struct {
	Pattern     string `json:"pattern"`
	Postprocess string `json:"postprocess"` // strip | date | currency; unknown kinds pass through
	Required    bool   `json:"required"`
}

// Field pairs a field name with its spec. Templates keep fields as an ordered
// slice because extraction runs in template declaration order.
type Field struct {
	Name string
	Spec FieldSpec
}

// Template is a named, immutable set of field extraction rules.
type Template struct {
	Name   string
	Fields []Field
}

// FieldResult is the per-field outcome of an extraction. An empty Value means
// "not found"; Confidence is always within [0.0, 1.0].
type FieldResult struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ExtractionRecord is the audit row persisted for each archived extraction.
type ExtractionRecord struct {
	ID            string                 `db:"id" json:"id"`
	FileName      string                 `db:"file_name" json:"file_name"`
	ContentType   string                 `db:"content_type" json:"content_type"`
	FileHash      string                 `db:"file_hash" json:"file_hash"` // hex SHA-256 of the uploaded bytes
	TemplateName  string                 `db:"template_name" json:"template_name"`
	TextChars     int                    `db:"text_chars" json:"text_chars"`
	AvgConfidence float64                `db:"avg_confidence" json:"avg_confidence"`
	Fields        map[string]FieldResult `db:"fields" json:"fields"`
	StorageURL    string                 `db:"storage_url" json:"storage_url"` // S3 URL of the archived file, if any
	CreatedAt     time.Time              `db:"created_at" json:"created_at"`
}
