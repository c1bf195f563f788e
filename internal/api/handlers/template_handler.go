package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinlade-dev/Extracta/internal/core/templates"
)

const apiVersion = "1.0.0"

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

func (h *TemplateHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": apiVersion,
	})
}

// ListTemplates returns the catalog keys available for POST /extract.
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{
		"templates": templates.Names(),
	})
}
