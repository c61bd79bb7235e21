package scoring

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/features"
)

func linearSpec(value float64) map[string]any {
	coef := make([]float64, len(features.Columns))
	coef[0] = value
	return map[string]any{"type": "linear", "coef": coef, "intercept": 1.0}
}

func bundleJSON(t *testing.T, mutate func(map[string]any)) string {
	t.Helper()

	doc := map[string]any{
		"feature_columns": features.Columns,
		"encoders": map[string][]string{
			"fragility_level": {"high", "low", "medium"},
			"material_type":   {"foam", "paper", "plastic"},
		},
		"scaler": map[string]any{
			"mean": make([]float64, len(features.Columns)),
			"std":  onesVector(),
		},
		"models": map[string]any{
			"suitability": linearSpec(0.5),
			"co2":         linearSpec(0.1),
			"cost":        linearSpec(2.0),
		},
	}
	if mutate != nil {
		mutate(doc)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal bundle: %v", err)
	}
	return string(data)
}

func onesVector() []float64 {
	out := make([]float64, len(features.Columns))
	for i := range out {
		out[i] = 1
	}
	return out
}

func TestLoadBundleLinear(t *testing.T) {
	t.Parallel()

	bundle, err := LoadBundle(strings.NewReader(bundleJSON(t, nil)))
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}

	code, err := bundle.Encoders.FragilityLevel.Encode("high")
	if err != nil || code != 0 {
		t.Fatalf("fragility encode = %d, %v", code, err)
	}

	row := make([]float64, len(features.Columns))
	row[0] = 2
	pred := bundle.Predictor.Predict(row)
	if pred.Suitability != 1+0.5*2 {
		t.Fatalf("suitability = %v, want 2", pred.Suitability)
	}
	if pred.CostINR != 1+2.0*2 {
		t.Fatalf("cost = %v, want 5", pred.CostINR)
	}
}

func TestLoadBundleRejectsSchemaMismatch(t *testing.T) {
	t.Parallel()

	raw := bundleJSON(t, func(doc map[string]any) {
		cols := append([]string(nil), features.Columns...)
		cols[0], cols[1] = cols[1], cols[0]
		doc["feature_columns"] = cols
	})
	_, err := LoadBundle(strings.NewReader(raw))
	if !errors.Is(err, features.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestLoadBundleRejectsMissingEncoder(t *testing.T) {
	t.Parallel()

	raw := bundleJSON(t, func(doc map[string]any) {
		doc["encoders"] = map[string][]string{"fragility_level": {"high", "low", "medium"}}
	})
	if _, err := LoadBundle(strings.NewReader(raw)); err == nil {
		t.Fatalf("expected error for missing material_type encoder")
	}
}

func TestLoadBundleRejectsUnsupportedModelType(t *testing.T) {
	t.Parallel()

	raw := bundleJSON(t, func(doc map[string]any) {
		doc["models"].(map[string]any)["co2"] = map[string]any{"type": "svm"}
	})
	if _, err := LoadBundle(strings.NewReader(raw)); err == nil {
		t.Fatalf("expected error for unsupported model type")
	}
}

func TestLoadBundleRejectsWrongCoefCount(t *testing.T) {
	t.Parallel()

	raw := bundleJSON(t, func(doc map[string]any) {
		doc["models"].(map[string]any)["cost"] = map[string]any{"type": "linear", "coef": []float64{1, 2}}
	})
	_, err := LoadBundle(strings.NewReader(raw))
	if !errors.Is(err, features.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestLoadBundleTreeEnsemble(t *testing.T) {
	t.Parallel()

	raw := bundleJSON(t, func(doc map[string]any) {
		tree := map[string]any{
			"feature":   []int{0, -1, -1},
			"threshold": []float64{0, 0, 0},
			"left":      []int{1, -1, -1},
			"right":     []int{2, -1, -1},
			"value":     []float64{0, 10, 20},
		}
		doc["models"].(map[string]any)["suitability"] = map[string]any{
			"type":      "tree_ensemble",
			"aggregate": "average",
			"trees":     []any{tree},
		}
	})
	bundle, err := LoadBundle(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}

	row := make([]float64, len(features.Columns))
	row[0] = 1
	if pred := bundle.Predictor.Predict(row); pred.Suitability != 20 {
		t.Fatalf("tree suitability = %v, want 20", pred.Suitability)
	}
}

func TestDefaultBundleLoads(t *testing.T) {
	t.Parallel()

	bundle, err := DefaultBundle()
	if err != nil {
		t.Fatalf("DefaultBundle: %v", err)
	}
	if bundle.Scaler == nil || bundle.Predictor == nil {
		t.Fatalf("embedded bundle incomplete")
	}
	for _, class := range []string{"low", "medium", "high"} {
		if _, err := bundle.Encoders.FragilityLevel.Encode(class); err != nil {
			t.Fatalf("embedded fragility encoder missing %q: %v", class, err)
		}
	}
}
