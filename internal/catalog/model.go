package catalog

// Material is one packaging material from the reference catalog, including
// the engineered indices computed offline. Immutable after startup.
type Material struct {
	ID                    int     `json:"material_id"`
	Name                  string  `json:"material_name"`
	Type                  string  `json:"material_type"`
	StrengthScore         float64 `json:"strength_score"`
	WeightCapacityKg      float64 `json:"weight_capacity_kg"`
	BiodegradabilityScore float64 `json:"biodegradability_score"`
	MoistureResistance    float64 `json:"moisture_resistance"`
	CO2EmissionKg         float64 `json:"co2_emission_kg"`
	CostPerKg             float64 `json:"cost_per_kg"`
	RecyclabilityPercent  float64 `json:"recyclability_percent"`
	CO2ImpactIndex        float64 `json:"co2_impact_index"`
	CostEfficiencyIndex   float64 `json:"cost_efficiency_index"`
	EcoScore              float64 `json:"eco_score"`
}

// Category is a product category row. Fragility is one of low/medium/high.
type Category struct {
	ID                   int     `json:"category_id"`
	Name                 string  `json:"category_name"`
	TypicalWeightKg      float64 `json:"typical_weight_kg"`
	FragilityLevel       string  `json:"fragility_level"`
	RequiresCushioning   bool    `json:"requires_cushioning"`
	MoistureSensitive    bool    `json:"moisture_sensitive"`
	TemperatureSensitive bool    `json:"temperature_sensitive"`
}

// MaterialDetails is the API shape for a single material, values rounded the
// same way the dataset is presented.
type MaterialDetails struct {
	ID                    int     `json:"material_id"`
	Name                  string  `json:"material_name"`
	Type                  string  `json:"material_type"`
	StrengthScore         float64 `json:"strength_score"`
	WeightCapacityKg      float64 `json:"weight_capacity_kg"`
	BiodegradabilityScore float64 `json:"biodegradability_score"`
	CO2EmissionKg         float64 `json:"co2_emission_kg"`
	RecyclabilityPercent  float64 `json:"recyclability_percent"`
	CostPerKg             float64 `json:"cost_per_kg"`
	MoistureResistance    float64 `json:"moisture_resistance"`
	EcoScore              float64 `json:"eco_score"`
	CO2ImpactIndex        float64 `json:"co2_impact_index"`
	CostEfficiencyIndex   float64 `json:"cost_efficiency_index"`
}

func toDetails(m Material) MaterialDetails {
	return MaterialDetails{
		ID:                    m.ID,
		Name:                  m.Name,
		Type:                  m.Type,
		StrengthScore:         roundTo(m.StrengthScore, 2),
		WeightCapacityKg:      m.WeightCapacityKg,
		BiodegradabilityScore: roundTo(m.BiodegradabilityScore, 2),
		CO2EmissionKg:         roundTo(m.CO2EmissionKg, 4),
		RecyclabilityPercent:  roundTo(m.RecyclabilityPercent, 1),
		CostPerKg:             roundTo(m.CostPerKg, 2),
		MoistureResistance:    roundTo(m.MoistureResistance, 2),
		EcoScore:              roundTo(m.EcoScore, 3),
		CO2ImpactIndex:        roundTo(m.CO2ImpactIndex, 3),
		CostEfficiencyIndex:   roundTo(m.CostEfficiencyIndex, 3),
	}
}
