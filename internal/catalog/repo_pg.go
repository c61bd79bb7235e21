package catalog

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ListMaterials returns the full catalog ordered by material id, including
// the engineered indices stored alongside the raw attributes.
func (r *PGRepo) ListMaterials(ctx context.Context) ([]Material, error) {
	const query = `
SELECT material_id, material_name, material_type, strength_score, weight_capacity_kg,
       biodegradability_score, moisture_resistance, co2_emission_kg, cost_per_kg,
       recyclability_percent, co2_impact_index, cost_efficiency_index, eco_score
FROM materials
ORDER BY material_id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Material
	for rows.Next() {
		var m Material
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Type,
			&m.StrengthScore,
			&m.WeightCapacityKg,
			&m.BiodegradabilityScore,
			&m.MoistureResistance,
			&m.CO2EmissionKg,
			&m.CostPerKg,
			&m.RecyclabilityPercent,
			&m.CO2ImpactIndex,
			&m.CostEfficiencyIndex,
			&m.EcoScore,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetCategory fetches a single category by name.
func (r *PGRepo) GetCategory(ctx context.Context, name string) (Category, error) {
	const query = `
SELECT category_id, category_name, typical_weight_kg, fragility_level,
       requires_cushioning, moisture_sensitive, temperature_sensitive
FROM product_categories
WHERE category_name = $1
LIMIT 1`

	var c Category
	err := r.DB.QueryRowContext(ctx, query, name).Scan(
		&c.ID,
		&c.Name,
		&c.TypicalWeightKg,
		&c.FragilityLevel,
		&c.RequiresCushioning,
		&c.MoistureSensitive,
		&c.TemperatureSensitive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, err
	}
	return c, nil
}

// ListCategoryNames returns all category names in alphabetical order.
func (r *PGRepo) ListCategoryNames(ctx context.Context) ([]string, error) {
	const query = `SELECT category_name FROM product_categories ORDER BY category_name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
