package validate

// Issue is one validation finding. Errors block calculation,
// warnings are advisory and never do.
type Issue struct {
	Message string `json:"message"`
	IsError bool   `json:"is_error"`
}

type Input struct {
	DBHCm          float64 `json:"dbh_cm"`
	HeightM        float64 `json:"height_m"`
	CrownDiameterM float64 `json:"crown_diameter_m"`
	CavityCm       float64 `json:"cavity_cm"`
	WindSpeedMS    float64 `json:"wind_speed_ms"`
}

// Check runs every rule independently and returns the findings in rule order.
func Check(in Input) []Issue {
	var issues []Issue
	addErr := func(msg string) { issues = append(issues, Issue{Message: msg, IsError: true}) }
	addWarn := func(msg string) { issues = append(issues, Issue{Message: msg}) }

	if in.DBHCm <= 0 {
		addErr("DBH must be greater than zero")
	}
	if in.HeightM <= 0 {
		addErr("tree height must be greater than zero")
	}
	if in.CrownDiameterM <= 0 {
		addErr("crown diameter must be greater than zero")
	}
	if in.WindSpeedMS <= 0 {
		addErr("design wind speed must be greater than zero")
	}
	if in.WindSpeedMS > 80 {
		addWarn("design wind speed above 80 m/s is implausible for most sites")
	}
	if in.CavityCm < 0 {
		addWarn("negative cavity diameter treated as no cavity")
	}
	if in.DBHCm > 0 && in.CavityCm >= in.DBHCm {
		addWarn("cavity diameter reaches DBH; capped to 99% of DBH")
	}
	if in.DBHCm > 0 && in.HeightM > 0 && in.HeightM < 2*(in.DBHCm/100.0) {
		addWarn("height is unusually small for the stem diameter")
	}
	if in.HeightM > 0 && in.CrownDiameterM > 2*in.HeightM {
		addWarn("crown diameter is unusually large for the tree height")
	}
	return issues
}

func HasError(issues []Issue) bool {
	for _, it := range issues {
		if it.IsError {
			return true
		}
	}
	return false
}
