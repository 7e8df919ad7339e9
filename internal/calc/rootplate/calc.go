package rootplate

import "math"

const (
	MinFactor = 0.2
	MaxFactor = 1.1

	expectedRadiusRatio = 3.5 // expected root-plate radius as multiple of DBH in m
	minPlateDepthM      = 0.5
)

type Rating string

const (
	RatingLow      Rating = "low"
	RatingModerate Rating = "moderate"
	RatingHigh     Rating = "high"
	RatingCritical Rating = "critical"
)

// Input collects anchorage observations. The composed factor is advisory
// only and is never fed into the bending-stress safety factor.
type Input struct {
	SoilType string `json:"soil_type"` // loam, clay, silt, sand, peat, rocky
	Moisture string `json:"moisture"`  // dry, moist, saturated, waterlogged

	LeanAngleDeg     float64 `json:"lean_angle_deg"`
	RecentLeanChange bool    `json:"recent_lean_change"`
	SoilHeaving      bool    `json:"soil_heaving"`
	RootDecay        bool    `json:"root_decay"`

	RestrictionType    string  `json:"restriction_type"` // pavement, building, wall, excavation
	SeveredRootPercent float64 `json:"severed_root_percent"`

	DBHCm        float64 `json:"dbh_cm"`
	PlateRadiusM float64 `json:"plate_radius_m"` // 0 = not measured
	PlateDepthM  float64 `json:"plate_depth_m"`  // 0 = not measured
}

func soilFactor(soil string) float64 {
	switch soil {
	case "clay":
		return 0.90
	case "silt":
		return 0.88
	case "sand":
		return 0.85
	case "peat":
		return 0.75
	case "rocky":
		return 1.05 // above-baseline anchorage
	default:
		return 1.00
	}
}

func moistureFactor(m string) float64 {
	switch m {
	case "moist":
		return 0.95
	case "saturated":
		return 0.80
	case "waterlogged":
		return 0.70
	default:
		return 1.00
	}
}

func leanFactor(deg float64) float64 {
	switch {
	case deg <= 5:
		return 0.95
	case deg <= 10:
		return 0.85
	case deg <= 15:
		return 0.70
	default:
		return 0.50
	}
}

func restrictionFactor(t string) float64 {
	switch t {
	case "pavement":
		return 0.85
	case "building":
		return 0.75
	case "wall":
		return 0.80
	case "excavation":
		return 0.65
	default:
		return 1.00
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Compose multiplies the anchorage observations into one stability factor,
// clamped to [0.2, 1.1]. The lean step is applied only when a lean was
// actually observed (angle > 0); an upright tree takes no lean penalty.
func Compose(in Input) float64 {
	factor := soilFactor(in.SoilType) * moistureFactor(in.Moisture)

	if in.LeanAngleDeg > 0 {
		factor *= leanFactor(in.LeanAngleDeg)
	}
	if in.RecentLeanChange {
		factor *= 0.70
	}
	if in.SoilHeaving {
		factor *= 0.60
	}
	if in.RootDecay {
		factor *= 0.75
	}
	factor *= restrictionFactor(in.RestrictionType)

	if in.SeveredRootPercent > 0 {
		factor *= clamp(1.0-(in.SeveredRootPercent/100.0)*0.8, 0.3, 1.0)
	}

	if in.PlateRadiusM > 0 && in.DBHCm > 0 {
		expected := expectedRadiusRatio * (in.DBHCm / 100.0)
		if in.PlateRadiusM < expected {
			factor *= clamp(in.PlateRadiusM/expected, 0.6, 1.0)
		}
	}
	if in.PlateDepthM > 0 && in.PlateDepthM < minPlateDepthM {
		factor *= 0.85
	}

	return clamp(factor, MinFactor, MaxFactor)
}

func Rate(factor float64) Rating {
	switch {
	case factor >= 0.9:
		return RatingLow
	case factor >= 0.7:
		return RatingModerate
	case factor >= 0.5:
		return RatingHigh
	default:
		return RatingCritical
	}
}
