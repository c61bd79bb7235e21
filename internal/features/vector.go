package features

import (
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/catalog"
)

// EncodeRow builds the feature vector for one (category, weight, material)
// combination using the effective fragility level. Pure function of its
// inputs and the fitted encoders.
func EncodeRow(enc Encoders, cat catalog.Category, productWeightKg float64, fragilityLevel string, m catalog.Material) ([]float64, error) {
	fragilityCode, err := enc.FragilityLevel.Encode(fragilityLevel)
	if err != nil {
		return nil, err
	}
	typeCode, err := enc.MaterialType.Encode(m.Type)
	if err != nil {
		return nil, err
	}

	row := make([]float64, numColumns)
	row[colFragility] = float64(fragilityCode)
	row[colRequiresCushioning] = boolToFloat(cat.RequiresCushioning)
	row[colMoistureSensitive] = boolToFloat(cat.MoistureSensitive)
	row[colTemperatureSensitive] = boolToFloat(cat.TemperatureSensitive)
	row[colProductWeight] = productWeightKg
	row[colMaterialType] = float64(typeCode)
	row[colStrength] = m.StrengthScore
	row[colWeightCapacity] = m.WeightCapacityKg
	row[colBiodegradability] = m.BiodegradabilityScore
	row[colMoistureResistance] = m.MoistureResistance
	row[colCO2Emission] = m.CO2EmissionKg
	row[colCostPerKg] = m.CostPerKg
	row[colCO2ImpactIndex] = m.CO2ImpactIndex
	row[colCostEfficiencyIndex] = m.CostEfficiencyIndex
	row[colEcoScore] = m.EcoScore
	return row, nil
}

// EncodeMatrix builds one feature row per material for a single request.
// The category-side columns are encoded once and shared across rows, so the
// per-request cost is one fragility lookup plus one pass over the catalog.
func EncodeMatrix(enc Encoders, cat catalog.Category, productWeightKg float64, fragilityLevel string, materials []catalog.Material) ([][]float64, error) {
	fragilityCode, err := enc.FragilityLevel.Encode(fragilityLevel)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(materials))
	for i, m := range materials {
		typeCode, err := enc.MaterialType.Encode(m.Type)
		if err != nil {
			return nil, err
		}
		row := make([]float64, numColumns)
		row[colFragility] = float64(fragilityCode)
		row[colRequiresCushioning] = boolToFloat(cat.RequiresCushioning)
		row[colMoistureSensitive] = boolToFloat(cat.MoistureSensitive)
		row[colTemperatureSensitive] = boolToFloat(cat.TemperatureSensitive)
		row[colProductWeight] = productWeightKg
		row[colMaterialType] = float64(typeCode)
		row[colStrength] = m.StrengthScore
		row[colWeightCapacity] = m.WeightCapacityKg
		row[colBiodegradability] = m.BiodegradabilityScore
		row[colMoistureResistance] = m.MoistureResistance
		row[colCO2Emission] = m.CO2EmissionKg
		row[colCostPerKg] = m.CostPerKg
		row[colCO2ImpactIndex] = m.CO2ImpactIndex
		row[colCostEfficiencyIndex] = m.CostEfficiencyIndex
		row[colEcoScore] = m.EcoScore
		rows[i] = row
	}
	return rows, nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
