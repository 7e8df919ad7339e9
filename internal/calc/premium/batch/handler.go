package batch

import (
	"encoding/json"
	"net/http"

	section "Arbor/internal/calc/section"
)

type Response struct {
	Results []section.ResultPayload `json:"results"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	resp := Response{Results: make([]section.ResultPayload, 0, len(out.Results))}
	for _, res := range out.Results {
		resp.Results = append(resp.Results, section.Payload(res))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
