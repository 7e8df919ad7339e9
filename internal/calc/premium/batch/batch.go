package batch

import (
	"fmt"

	section "Arbor/internal/calc/section"
	catalog "Arbor/internal/catalog"
)

type Item struct {
	SpeciesID string           `json:"species_id"`
	Geometry  section.Geometry `json:"geometry"`
	Scenario  section.Scenario `json:"scenario"`
}

type Input struct {
	Items []Item `json:"items"`
}

type Output struct {
	Results []section.Result
}

func Calculate(in Input) (Output, error) {
	if len(in.Items) == 0 {
		return Output{}, fmt.Errorf("no items")
	}
	out := Output{Results: make([]section.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		sp, err := catalog.Species(item.SpeciesID)
		if err != nil {
			return Output{}, err
		}
		res, err := section.Evaluate(sp, item.Geometry, item.Scenario)
		if err != nil {
			return Output{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
