package recommend

import "time"

// Recommendation is the per-material scoring result returned to callers.
// Ephemeral: produced per request, never stored beyond the history row.
type Recommendation struct {
	MaterialID            int     `json:"material_id"`
	MaterialName          string  `json:"material_name"`
	MaterialType          string  `json:"material_type"`
	SuitabilityScore      float64 `json:"suitability_score"`
	PredictedCO2Kg        float64 `json:"predicted_co2_kg"`
	PredictedCostINR      float64 `json:"predicted_cost_inr"`
	EcoScore              float64 `json:"eco_score"`
	BiodegradabilityScore float64 `json:"biodegradability_score"`
	CanHandleWeight       bool    `json:"can_handle_weight"`
	WeightCapacityKg      float64 `json:"weight_capacity_kg"`
}

// Comparison reports the delta between a caller's current material and the
// top recommendation for the same request.
type Comparison struct {
	CurrentMaterial     string  `json:"current_material"`
	CurrentCO2Kg        float64 `json:"current_co2_kg"`
	CurrentCostINR      float64 `json:"current_cost_inr"`
	RecommendedMaterial string  `json:"recommended_material"`
	RecommendedCO2Kg    float64 `json:"recommended_co2_kg"`
	RecommendedCostINR  float64 `json:"recommended_cost_inr"`
	RecommendedEcoScore float64 `json:"recommended_eco_score"`
	CO2SavingsKg        float64 `json:"co2_savings_kg"`
	CO2ReductionPercent float64 `json:"co2_reduction_percent"`
	CostDifferenceINR   float64 `json:"cost_difference_inr"`
}

// RecommendRequest carries the validated parameters of one ranking request.
type RecommendRequest struct {
	Category          string
	ProductWeightKg   float64
	TopN              int
	FragilityOverride string
	BudgetLimit       *float64
	CurrentMaterial   string
}

// CompareRequest carries the validated parameters of one comparison request.
type CompareRequest struct {
	Category        string
	ProductWeightKg float64
	CurrentMaterial string
}

// HistoryRecord is one persisted recommendation, written best-effort after a
// successful request.
type HistoryRecord struct {
	ID                      string
	CategoryName            string
	ProductWeightKg         float64
	FragilityLevel          string
	BudgetLimit             *float64
	CurrentMaterialName     string
	RecommendedMaterialName string
	RecommendedMaterialType string
	SuitabilityScore        float64
	PredictedCostINR        float64
	PredictedCO2Kg          float64
	EcoScore                float64
	CO2SavingsKg            *float64
	CostSavingsINR          *float64
	CreatedAt               time.Time
}
