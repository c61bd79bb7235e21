package features

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/catalog"
)

func testEncoders() Encoders {
	return Encoders{
		FragilityLevel: NewLabelEncoder([]string{"high", "low", "medium"}),
		MaterialType:   NewLabelEncoder([]string{"paper", "plastic", "foam"}),
	}
}

func testCategory() catalog.Category {
	return catalog.Category{
		ID:                   1,
		Name:                 "Electronics",
		TypicalWeightKg:      2.0,
		FragilityLevel:       "high",
		RequiresCushioning:   true,
		MoistureSensitive:    true,
		TemperatureSensitive: false,
	}
}

func testMaterial() catalog.Material {
	return catalog.Material{
		ID:                    3,
		Name:                  "Bubble Wrap",
		Type:                  "plastic",
		StrengthScore:         0.55,
		WeightCapacityKg:      8,
		BiodegradabilityScore: 0.05,
		MoistureResistance:    0.95,
		CO2EmissionKg:         2.10,
		CostPerKg:             55,
		RecyclabilityPercent:  40,
		CO2ImpactIndex:        0.64,
		CostEfficiencyIndex:   0.12,
		EcoScore:              0.26,
	}
}

func TestEncodeRowColumnOrder(t *testing.T) {
	t.Parallel()

	row, err := EncodeRow(testEncoders(), testCategory(), 2.5, "high", testMaterial())
	if err != nil {
		t.Fatalf("EncodeRow: %v", err)
	}
	if len(row) != len(Columns) {
		t.Fatalf("row length %d, want %d", len(row), len(Columns))
	}

	// fragility "high" encodes to 0, material type "plastic" to 2.
	want := []float64{0, 1, 1, 0, 2.5, 2, 0.55, 8, 0.05, 0.95, 2.10, 55, 0.64, 0.12, 0.26}
	if !reflect.DeepEqual(row, want) {
		t.Fatalf("EncodeRow = %v, want %v", row, want)
	}
}

func TestEncodeMatrixMatchesRowEncoding(t *testing.T) {
	t.Parallel()

	enc := testEncoders()
	cat := testCategory()
	materials := []catalog.Material{
		testMaterial(),
		{ID: 1, Name: "Corrugated Cardboard", Type: "paper", StrengthScore: 0.7, WeightCapacityKg: 12, BiodegradabilityScore: 0.9, MoistureResistance: 0.3, CO2EmissionKg: 0.9, CostPerKg: 35, RecyclabilityPercent: 92, CO2ImpactIndex: 0.2, CostEfficiencyIndex: 0.8, EcoScore: 0.86},
	}

	rows, err := EncodeMatrix(enc, cat, 2.5, "medium", materials)
	if err != nil {
		t.Fatalf("EncodeMatrix: %v", err)
	}
	if len(rows) != len(materials) {
		t.Fatalf("expected %d rows, got %d", len(materials), len(rows))
	}

	for i, m := range materials {
		row, err := EncodeRow(enc, cat, 2.5, "medium", m)
		if err != nil {
			t.Fatalf("EncodeRow material %d: %v", m.ID, err)
		}
		if !reflect.DeepEqual(rows[i], row) {
			t.Fatalf("matrix row %d differs from single-row encoding:\n%v\n%v", i, rows[i], row)
		}
	}
}

func TestEncodeMatrixUnknownFragility(t *testing.T) {
	t.Parallel()

	_, err := EncodeMatrix(testEncoders(), testCategory(), 2.5, "extreme", []catalog.Material{testMaterial()})
	if !errors.Is(err, ErrUnknownCategoryValue) {
		t.Fatalf("expected ErrUnknownCategoryValue, got %v", err)
	}
}

func TestEncodeRowUnknownMaterialType(t *testing.T) {
	t.Parallel()

	m := testMaterial()
	m.Type = "unobtainium"
	_, err := EncodeRow(testEncoders(), testCategory(), 2.5, "low", m)
	if !errors.Is(err, ErrUnknownCategoryValue) {
		t.Fatalf("expected ErrUnknownCategoryValue, got %v", err)
	}
}

func TestSameSchema(t *testing.T) {
	t.Parallel()

	if !SameSchema(Columns) {
		t.Fatalf("Columns should match itself")
	}

	reordered := append([]string(nil), Columns...)
	reordered[0], reordered[1] = reordered[1], reordered[0]
	if SameSchema(reordered) {
		t.Fatalf("reordered schema should not match")
	}
	if SameSchema(Columns[:len(Columns)-1]) {
		t.Fatalf("truncated schema should not match")
	}
}
