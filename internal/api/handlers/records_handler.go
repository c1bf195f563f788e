package handlers

import (
	"encoding/json"
	"net/http"

	db "github.com/akinlade-dev/Extracta/internal/core/database"
)

type RecordsHandler struct {
	dbclient db.DbClient
}

func NewRecordsHandler(dbclient db.DbClient) *RecordsHandler {
	return &RecordsHandler{dbclient: dbclient}
}

// ListExtractions returns the most recent archived extraction runs.
func (h *RecordsHandler) ListExtractions(w http.ResponseWriter, r *http.Request) {
	records, err := h.dbclient.ListExtractionRecords(r.Context(), 50)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
