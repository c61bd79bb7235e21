package features

// Columns is the fixed feature schema, in the exact order the models were
// trained with. The scaler parameters and regressor inputs are positional,
// so reordering or renaming any entry silently breaks every prediction;
// loaders must verify artifact schemas against this list.
var Columns = []string{
	"fragility_level_encoded",
	"requires_cushioning",
	"moisture_sensitive",
	"temperature_sensitive",
	"product_weight_kg",
	"material_type_encoded",
	"strength_score",
	"weight_capacity_kg",
	"biodegradability_score",
	"moisture_resistance",
	"co2_emission_kg",
	"cost_per_kg",
	"co2_impact_index",
	"cost_efficiency_index",
	"eco_score",
}

// Column positions within a feature row.
const (
	colFragility = iota
	colRequiresCushioning
	colMoistureSensitive
	colTemperatureSensitive
	colProductWeight
	colMaterialType
	colStrength
	colWeightCapacity
	colBiodegradability
	colMoistureResistance
	colCO2Emission
	colCostPerKg
	colCO2ImpactIndex
	colCostEfficiencyIndex
	colEcoScore

	numColumns
)

// SameSchema reports whether the given column list matches Columns exactly,
// including order.
func SameSchema(columns []string) bool {
	if len(columns) != len(Columns) {
		return false
	}
	for i, c := range columns {
		if c != Columns[i] {
			return false
		}
	}
	return true
}
