package defect

import "math"

const (
	MinFactor = 0.20
	MaxFactor = 1.00
)

// Input collects independent structural defect observations. Every field
// defaults to "not observed" (no reduction).
type Input struct {
	BracketFungi      bool    `json:"bracket_fungi"`
	FruitingBodyCount int     `json:"fruiting_body_count"`
	CavityWithDecay   bool    `json:"cavity_with_decay"`
	Cracks            bool    `json:"cracks"`
	BasalDecay        bool    `json:"basal_decay"`
	IncludedBark      bool    `json:"included_bark"`

	// Detail observations, applied only when decay is present.
	DecayType     string `json:"decay_type"`     // white, brown, soft
	DecayLocation string `json:"decay_location"` // root-plate, stem-base, mid-stem, upper-stem
	DecaySeverity string `json:"decay_severity"` // minor, moderate, severe, extensive

	// Independent of the decay gating above.
	DecayExtentPercent float64 `json:"decay_extent_percent"`
	Resonance          string  `json:"resonance"` // solid, drum, hollow
	DecayColumnHeightM float64 `json:"decay_column_height_m"`
	TreeHeightM        float64 `json:"tree_height_m"`
}

func bracketFungiFactor(count int) float64 {
	switch {
	case count <= 1:
		return 0.85
	case count <= 3:
		return 0.75
	case count <= 5:
		return 0.65
	default:
		return 0.55
	}
}

func decayTypeFactor(t string) float64 {
	switch t {
	case "white":
		return 0.85
	case "brown":
		return 0.80
	case "soft":
		return 0.90
	default:
		return 0.90
	}
}

func locationFactor(loc string) float64 {
	switch loc {
	case "root-plate":
		return 0.85
	case "stem-base":
		return 0.90
	case "mid-stem":
		return 0.95
	default:
		return 1.00
	}
}

func severityFactor(s string) float64 {
	switch s {
	case "minor":
		return 0.95
	case "moderate":
		return 0.85
	case "severe":
		return 0.70
	case "extensive":
		return 0.50
	default:
		return 1.00
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Compose multiplies all applicable reduction factors and clamps the
// product to [0.20, 1.00].
func Compose(in Input) float64 {
	factor := 1.0

	if in.BracketFungi {
		factor *= bracketFungiFactor(in.FruitingBodyCount)
	}
	if in.CavityWithDecay {
		factor *= 0.80
	}
	if in.Cracks {
		factor *= 0.85
	}
	if in.BasalDecay {
		factor *= 0.75
	}
	if in.IncludedBark {
		factor *= 0.85
	}

	// Detail factors apply only when decay itself was observed.
	if in.BracketFungi || in.CavityWithDecay || in.BasalDecay {
		factor *= decayTypeFactor(in.DecayType)
		factor *= locationFactor(in.DecayLocation)
		factor *= severityFactor(in.DecaySeverity)
	}

	if in.DecayExtentPercent > 0 {
		factor *= clamp(1.0-(in.DecayExtentPercent/100.0)*0.4, 0.4, 1.0)
	}
	switch in.Resonance {
	case "drum":
		factor *= 0.90
	case "hollow":
		factor *= 0.75
	}
	if in.DecayColumnHeightM > 0 && in.TreeHeightM > 0 {
		factor *= clamp(1.0-(in.DecayColumnHeightM/in.TreeHeightM)*0.3, 0.5, 1.0)
	}

	return clamp(factor, MinFactor, MaxFactor)
}
