package recommend

import (
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/catalog"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/features"
	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/scoring"
)

// Engine bundles the immutable per-process scoring state: fitted encoders,
// scaler, the three regressors, and the material catalog snapshot.
// Constructed once at startup and shared across requests without locking;
// nothing in it is mutated after construction.
type Engine struct {
	Encoders  features.Encoders
	Scaler    *scoring.Scaler
	Predictor *scoring.Predictor
	Catalog   *catalog.Snapshot
}

// NewEngine assembles an Engine from a loaded model bundle and the catalog
// snapshot.
func NewEngine(bundle *scoring.Bundle, snapshot *catalog.Snapshot) *Engine {
	return &Engine{
		Encoders:  bundle.Encoders,
		Scaler:    bundle.Scaler,
		Predictor: bundle.Predictor,
		Catalog:   snapshot,
	}
}

// scoreAll builds the feature matrix for every catalog material, scales it
// once, and runs one batched prediction per target model.
func (e *Engine) scoreAll(cat catalog.Category, productWeightKg float64, fragilityLevel string) ([]float64, []float64, []float64, error) {
	materials := e.Catalog.Materials()
	rows, err := features.EncodeMatrix(e.Encoders, cat, productWeightKg, fragilityLevel, materials)
	if err != nil {
		return nil, nil, nil, err
	}
	scaled, err := e.Scaler.TransformBatch(rows)
	if err != nil {
		return nil, nil, nil, err
	}
	suitability, co2, cost := e.Predictor.PredictBatch(scaled)
	return suitability, co2, cost, nil
}
