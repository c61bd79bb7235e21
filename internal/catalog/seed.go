package catalog

// Seed data mirrors the processed materials dataset and category table the
// models were trained against. The engineered indices are recomputed by
// Engineer at load, so only the raw attributes are listed here.

func seedMaterials() []Material {
	return []Material{
		{ID: 1, Name: "Corrugated Cardboard", Type: "paper", StrengthScore: 0.70, WeightCapacityKg: 12, BiodegradabilityScore: 0.90, MoistureResistance: 0.30, CO2EmissionKg: 0.90, CostPerKg: 35, RecyclabilityPercent: 92},
		{ID: 2, Name: "Recycled Kraft Paper", Type: "paper", StrengthScore: 0.45, WeightCapacityKg: 5, BiodegradabilityScore: 0.95, MoistureResistance: 0.20, CO2EmissionKg: 0.60, CostPerKg: 28, RecyclabilityPercent: 95},
		{ID: 3, Name: "Bubble Wrap", Type: "plastic", StrengthScore: 0.55, WeightCapacityKg: 8, BiodegradabilityScore: 0.05, MoistureResistance: 0.95, CO2EmissionKg: 2.10, CostPerKg: 55, RecyclabilityPercent: 40},
		{ID: 4, Name: "EPS Foam", Type: "foam", StrengthScore: 0.65, WeightCapacityKg: 10, BiodegradabilityScore: 0.02, MoistureResistance: 0.90, CO2EmissionKg: 2.50, CostPerKg: 48, RecyclabilityPercent: 30},
		{ID: 5, Name: "Molded Pulp", Type: "paper", StrengthScore: 0.60, WeightCapacityKg: 7, BiodegradabilityScore: 0.92, MoistureResistance: 0.35, CO2EmissionKg: 0.75, CostPerKg: 40, RecyclabilityPercent: 90},
		{ID: 6, Name: "Mushroom Packaging", Type: "biodegradable", StrengthScore: 0.58, WeightCapacityKg: 6, BiodegradabilityScore: 0.98, MoistureResistance: 0.40, CO2EmissionKg: 0.40, CostPerKg: 85, RecyclabilityPercent: 98},
		{ID: 7, Name: "Cornstarch Packaging", Type: "bioplastic", StrengthScore: 0.50, WeightCapacityKg: 5, BiodegradabilityScore: 0.90, MoistureResistance: 0.55, CO2EmissionKg: 0.85, CostPerKg: 70, RecyclabilityPercent: 80},
		{ID: 8, Name: "PET Plastic", Type: "plastic", StrengthScore: 0.85, WeightCapacityKg: 20, BiodegradabilityScore: 0.03, MoistureResistance: 0.98, CO2EmissionKg: 3.20, CostPerKg: 60, RecyclabilityPercent: 55},
		{ID: 9, Name: "Jute Fabric", Type: "natural", StrengthScore: 0.62, WeightCapacityKg: 9, BiodegradabilityScore: 0.96, MoistureResistance: 0.25, CO2EmissionKg: 0.55, CostPerKg: 65, RecyclabilityPercent: 88},
		{ID: 10, Name: "Honeycomb Cardboard", Type: "paper", StrengthScore: 0.80, WeightCapacityKg: 18, BiodegradabilityScore: 0.88, MoistureResistance: 0.30, CO2EmissionKg: 0.95, CostPerKg: 52, RecyclabilityPercent: 90},
	}
}

func seedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Electronics", TypicalWeightKg: 2.0, FragilityLevel: "high", RequiresCushioning: true, MoistureSensitive: true, TemperatureSensitive: false},
		{ID: 2, Name: "Glassware", TypicalWeightKg: 1.5, FragilityLevel: "high", RequiresCushioning: true, MoistureSensitive: false, TemperatureSensitive: false},
		{ID: 3, Name: "Clothing", TypicalWeightKg: 0.8, FragilityLevel: "low", RequiresCushioning: false, MoistureSensitive: true, TemperatureSensitive: false},
		{ID: 4, Name: "Books", TypicalWeightKg: 1.2, FragilityLevel: "low", RequiresCushioning: false, MoistureSensitive: true, TemperatureSensitive: false},
		{ID: 5, Name: "Food Items", TypicalWeightKg: 1.0, FragilityLevel: "medium", RequiresCushioning: false, MoistureSensitive: true, TemperatureSensitive: true},
		{ID: 6, Name: "Cosmetics", TypicalWeightKg: 0.5, FragilityLevel: "medium", RequiresCushioning: true, MoistureSensitive: true, TemperatureSensitive: true},
		{ID: 7, Name: "Furniture", TypicalWeightKg: 15.0, FragilityLevel: "medium", RequiresCushioning: true, MoistureSensitive: false, TemperatureSensitive: false},
		{ID: 8, Name: "Toys", TypicalWeightKg: 0.9, FragilityLevel: "low", RequiresCushioning: false, MoistureSensitive: false, TemperatureSensitive: false},
	}
}
