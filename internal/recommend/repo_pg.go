package recommend

import (
	"context"
	"database/sql"
)

// PGRepo implements HistoryRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Save inserts one recommendation history row.
func (r *PGRepo) Save(ctx context.Context, record HistoryRecord) error {
	const query = `
INSERT INTO recommendations (
    id, category_name, product_weight_kg, fragility_level, budget_limit,
    current_material_name, recommended_material_name, recommended_material_type,
    suitability_score, predicted_cost_inr, predicted_co2_kg, eco_score,
    co2_savings_kg, cost_savings_inr, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	var budgetLimit sql.NullFloat64
	if record.BudgetLimit != nil {
		budgetLimit = sql.NullFloat64{Float64: *record.BudgetLimit, Valid: true}
	}
	var currentMaterial sql.NullString
	if record.CurrentMaterialName != "" {
		currentMaterial = sql.NullString{String: record.CurrentMaterialName, Valid: true}
	}
	var fragility sql.NullString
	if record.FragilityLevel != "" {
		fragility = sql.NullString{String: record.FragilityLevel, Valid: true}
	}
	var co2Savings sql.NullFloat64
	if record.CO2SavingsKg != nil {
		co2Savings = sql.NullFloat64{Float64: *record.CO2SavingsKg, Valid: true}
	}
	var costSavings sql.NullFloat64
	if record.CostSavingsINR != nil {
		costSavings = sql.NullFloat64{Float64: *record.CostSavingsINR, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		record.ID,
		record.CategoryName,
		record.ProductWeightKg,
		fragility,
		budgetLimit,
		currentMaterial,
		record.RecommendedMaterialName,
		record.RecommendedMaterialType,
		record.SuitabilityScore,
		record.PredictedCostINR,
		record.PredictedCO2Kg,
		record.EcoScore,
		co2Savings,
		costSavings,
		record.CreatedAt,
	)
	return err
}

var _ HistoryRepo = (*PGRepo)(nil)
