package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/akinlade-dev/Extracta/internal/core"
	"github.com/akinlade-dev/Extracta/internal/core/archive"
	"github.com/akinlade-dev/Extracta/internal/core/extraction"
	"github.com/akinlade-dev/Extracta/internal/core/templates"
	"github.com/akinlade-dev/Extracta/internal/models"
)

// minTextChars is the precondition on extracted text: anything shorter is
// treated as an empty or unreadable document.
const minTextChars = 10

type ExtractHandler struct {
	extractor      core.TextExtractor
	archiver       archive.Archiver
	maxUploadBytes int64
}

// NewExtractHandler wires the text extractor and the optional archiver
// (nil disables archiving).
func NewExtractHandler(extractor core.TextExtractor, archiver archive.Archiver, maxUploadMB int) *ExtractHandler {
	return &ExtractHandler{
		extractor:      extractor,
		archiver:       archiver,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

type extractResponse struct {
	TemplateUsed  string                        `json:"template_used"`
	Fields        map[string]models.FieldResult `json:"fields"`
	RawTextChars  int                           `json:"raw_text_chars"`
	ConfidenceAvg float64                       `json:"confidence_avg"`
	FileHash      string                        `json:"file_hash"`
}

// Extract handles POST /extract: multipart "file" plus "template_name"
// naming a catalog template.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	file, header, ok := h.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	templateName := r.FormValue("template_name")
	tmpl, found := templates.Get(templateName)
	if !found {
		http.Error(w, fmt.Sprintf("template '%s' not found", templateName), http.StatusNotFound)
		return
	}

	h.run(w, r, file, header, tmpl)
}

// ExtractCustom handles POST /extract-custom: multipart "file" plus a
// "template_json" ad-hoc definition, validated before any extraction runs.
func (h *ExtractHandler) ExtractCustom(w http.ResponseWriter, r *http.Request) {
	file, header, ok := h.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	tmpl, err := templates.ParseCustom([]byte(r.FormValue("template_json")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.run(w, r, file, header, tmpl)
}

// uploadedFile pulls the multipart file out of the request and enforces the
// content-type and size limits shared by both endpoints.
func (h *ExtractHandler) uploadedFile(w http.ResponseWriter, r *http.Request) (io.ReadCloser, *fileMeta, bool) {
	if err := r.ParseMultipartForm(h.maxUploadBytes + (1 << 20)); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return nil, nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "invalid file", http.StatusBadRequest)
		return nil, nil, false
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/pdf") {
		file.Close()
		http.Error(w, "file must be a PDF", http.StatusBadRequest)
		return nil, nil, false
	}

	if header.Size > h.maxUploadBytes {
		file.Close()
		http.Error(w, fmt.Sprintf("file too large. Maximum size is %dMB", h.maxUploadBytes>>20), http.StatusRequestEntityTooLarge)
		return nil, nil, false
	}

	return file, &fileMeta{name: header.Filename, contentType: contentType}, true
}

type fileMeta struct {
	name        string
	contentType string
}

// run performs the shared extraction flow: read, hash, text-extract, apply
// the template, respond, and hand the result to the archiver.
func (h *ExtractHandler) run(w http.ResponseWriter, r *http.Request, file io.Reader, meta *fileMeta, tmpl models.Template) {
	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "could not read file", http.StatusBadRequest)
		return
	}

	sum := sha256.Sum256(data)
	fileHash := hex.EncodeToString(sum[:])

	text, err := h.extractor.ExtractText(r.Context(), data, meta.contentType)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not extract text from PDF: %v", err), http.StatusBadRequest)
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextChars {
		http.Error(w, "PDF appears to be empty or unreadable", http.StatusBadRequest)
		return
	}

	fields, confidenceAvg := extraction.Extract(text, tmpl)
	textChars := utf8.RuneCountInString(text)

	resp := extractResponse{
		TemplateUsed:  tmpl.Name,
		Fields:        fields,
		RawTextChars:  textChars,
		ConfidenceAvg: confidenceAvg,
		FileHash:      fileHash,
	}

	if h.archiver != nil {
		h.archiver.Enqueue(archive.Job{
			RecordID:      uuid.NewString(),
			FileName:      meta.name,
			ContentType:   meta.contentType,
			FileHash:      fileHash,
			TemplateName:  tmpl.Name,
			TextChars:     textChars,
			AvgConfidence: confidenceAvg,
			Fields:        fields,
			Payload:       data,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
