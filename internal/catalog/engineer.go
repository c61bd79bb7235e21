package catalog

import "math"

// Index weights fixed by the training pipeline. Changing any of them without
// retraining the models invalidates every prediction.
const (
	co2EmissionWeight      = 0.70
	co2RecyclabilityWeight = 0.30

	ecoCO2Weight           = 0.40
	ecoBiodegradableWeight = 0.35
	ecoRecyclabilityWeight = 0.25

	costEfficiencyFloor = 0.1
)

// Engineer computes the derived indices (co2_impact_index,
// cost_efficiency_index, eco_score) over a full material set. The formulas
// depend on set-wide maxima, so the whole catalog must be passed at once.
func Engineer(materials []Material) []Material {
	if len(materials) == 0 {
		return materials
	}

	var maxCO2, maxCost float64
	for _, m := range materials {
		if m.CO2EmissionKg > maxCO2 {
			maxCO2 = m.CO2EmissionKg
		}
		if m.CostPerKg > maxCost {
			maxCost = m.CostPerKg
		}
	}

	out := make([]Material, len(materials))
	copy(out, materials)

	rawEfficiency := make([]float64, len(out))
	minRaw := math.Inf(1)
	maxRaw := math.Inf(-1)
	for i, m := range out {
		co2Norm := 0.0
		if maxCO2 > 0 {
			co2Norm = m.CO2EmissionKg / maxCO2
		}
		out[i].CO2ImpactIndex = co2Norm*co2EmissionWeight +
			(1-m.RecyclabilityPercent/100)*co2RecyclabilityWeight

		performance := (m.StrengthScore + m.BiodegradabilityScore) / 2
		costNorm := 0.0
		if maxCost > 0 {
			costNorm = m.CostPerKg / maxCost
		}
		rawEfficiency[i] = performance * (1 - costNorm + costEfficiencyFloor)
		if rawEfficiency[i] < minRaw {
			minRaw = rawEfficiency[i]
		}
		if rawEfficiency[i] > maxRaw {
			maxRaw = rawEfficiency[i]
		}
	}

	span := maxRaw - minRaw
	for i := range out {
		if span > 0 {
			out[i].CostEfficiencyIndex = (rawEfficiency[i] - minRaw) / span
		} else {
			out[i].CostEfficiencyIndex = 0
		}
		out[i].EcoScore = (1-out[i].CO2ImpactIndex)*ecoCO2Weight +
			out[i].BiodegradabilityScore*ecoBiodegradableWeight +
			(out[i].RecyclabilityPercent/100)*ecoRecyclabilityWeight
	}
	return out
}

func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
