package rootplate

import (
	"encoding/json"
	"net/http"
)

type Result struct {
	StabilityFactor float64 `json:"stability_factor"`
	Rating          Rating  `json:"rating"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	factor := Compose(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{StabilityFactor: factor, Rating: Rate(factor)})
}
