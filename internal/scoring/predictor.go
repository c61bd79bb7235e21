package scoring

// Prediction holds the three independent model outputs for one feature row.
// Values are raw model outputs; any domain clamping (weight penalties and
// the like) belongs to the caller.
type Prediction struct {
	Suitability float64
	CO2Kg       float64
	CostINR     float64
}

// Predictor wraps the three independently trained regressors. Each target
// has its own model so any one of them can be retrained without touching
// the others.
type Predictor struct {
	Suitability Regressor
	CO2         Regressor
	Cost        Regressor
}

// Predict scores a single standardized feature row.
func (p *Predictor) Predict(row []float64) Prediction {
	return Prediction{
		Suitability: p.Suitability.Predict(row),
		CO2Kg:       p.CO2.Predict(row),
		CostINR:     p.Cost.Predict(row),
	}
}

// PredictBatch scores a standardized feature matrix with one batched call
// per target model. The three returned slices are index-aligned with rows.
func (p *Predictor) PredictBatch(rows [][]float64) (suitability, co2, cost []float64) {
	return p.Suitability.PredictBatch(rows), p.CO2.PredictBatch(rows), p.Cost.PredictBatch(rows)
}
