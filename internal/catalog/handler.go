package catalog

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Species(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AllSpecies())
}

func (h *Handler) Winds(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AllWinds())
}
