package defect

import (
	"encoding/json"
	"net/http"
)

type Result struct {
	StrengthFactor float64 `json:"strength_factor"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{StrengthFactor: Compose(input)})
}
