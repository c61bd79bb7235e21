package catalog

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEngineerCO2ImpactIndex(t *testing.T) {
	t.Parallel()

	materials := []Material{
		{ID: 1, CO2EmissionKg: 1.0, RecyclabilityPercent: 100, StrengthScore: 0.5, BiodegradabilityScore: 0.5, CostPerKg: 10},
		{ID: 2, CO2EmissionKg: 2.0, RecyclabilityPercent: 50, StrengthScore: 0.5, BiodegradabilityScore: 0.5, CostPerKg: 20},
	}

	out := Engineer(materials)

	// Material 1: 0.7*(1/2) + 0.3*(1-1.0) = 0.35
	if !almostEqual(out[0].CO2ImpactIndex, 0.35) {
		t.Fatalf("material 1 co2 index = %v, want 0.35", out[0].CO2ImpactIndex)
	}
	// Material 2: 0.7*(2/2) + 0.3*(1-0.5) = 0.85
	if !almostEqual(out[1].CO2ImpactIndex, 0.85) {
		t.Fatalf("material 2 co2 index = %v, want 0.85", out[1].CO2ImpactIndex)
	}
}

func TestEngineerCostEfficiencySpansUnitInterval(t *testing.T) {
	t.Parallel()

	materials := []Material{
		{ID: 1, StrengthScore: 0.9, BiodegradabilityScore: 0.9, CostPerKg: 10, CO2EmissionKg: 1, RecyclabilityPercent: 90},
		{ID: 2, StrengthScore: 0.5, BiodegradabilityScore: 0.5, CostPerKg: 50, CO2EmissionKg: 2, RecyclabilityPercent: 50},
		{ID: 3, StrengthScore: 0.2, BiodegradabilityScore: 0.1, CostPerKg: 100, CO2EmissionKg: 3, RecyclabilityPercent: 30},
	}

	out := Engineer(materials)

	// Min-max normalization: best raw efficiency maps to 1, worst to 0.
	if !almostEqual(out[0].CostEfficiencyIndex, 1) {
		t.Fatalf("best material index = %v, want 1", out[0].CostEfficiencyIndex)
	}
	if !almostEqual(out[2].CostEfficiencyIndex, 0) {
		t.Fatalf("worst material index = %v, want 0", out[2].CostEfficiencyIndex)
	}
	mid := out[1].CostEfficiencyIndex
	if mid <= 0 || mid >= 1 {
		t.Fatalf("middle material index = %v, want within (0,1)", mid)
	}
}

func TestEngineerEcoScoreFormula(t *testing.T) {
	t.Parallel()

	materials := []Material{
		{ID: 1, CO2EmissionKg: 2.0, RecyclabilityPercent: 80, BiodegradabilityScore: 0.6, StrengthScore: 0.5, CostPerKg: 30},
	}

	out := Engineer(materials)

	// Single material: co2 index = 0.7*1 + 0.3*0.2 = 0.76.
	co2Idx := out[0].CO2ImpactIndex
	want := (1-co2Idx)*0.40 + 0.6*0.35 + 0.8*0.25
	if !almostEqual(out[0].EcoScore, want) {
		t.Fatalf("eco score = %v, want %v", out[0].EcoScore, want)
	}
}

func TestEngineerDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	materials := []Material{
		{ID: 1, CO2EmissionKg: 1, RecyclabilityPercent: 90, StrengthScore: 0.7, BiodegradabilityScore: 0.9, CostPerKg: 35},
		{ID: 2, CO2EmissionKg: 3, RecyclabilityPercent: 40, StrengthScore: 0.5, BiodegradabilityScore: 0.1, CostPerKg: 60},
	}

	_ = Engineer(materials)

	for i, m := range materials {
		if m.CO2ImpactIndex != 0 || m.CostEfficiencyIndex != 0 || m.EcoScore != 0 {
			t.Fatalf("input material %d was mutated: %+v", i, m)
		}
	}
}

func TestEngineerIdempotentOnDerivedFields(t *testing.T) {
	t.Parallel()

	once := Engineer(seedMaterials())
	twice := Engineer(once)

	for i := range once {
		if !almostEqual(once[i].CO2ImpactIndex, twice[i].CO2ImpactIndex) ||
			!almostEqual(once[i].CostEfficiencyIndex, twice[i].CostEfficiencyIndex) ||
			!almostEqual(once[i].EcoScore, twice[i].EcoScore) {
			t.Fatalf("material %d indices changed on re-engineering", once[i].ID)
		}
	}
}
