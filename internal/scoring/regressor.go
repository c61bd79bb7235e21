package scoring

// Regressor predicts a single target value from a standardized feature row.
// Implementations are read-only after construction and safe for concurrent
// use.
type Regressor interface {
	Predict(row []float64) float64
	PredictBatch(rows [][]float64) []float64
}

// linearModel is a plain linear regressor. It backs the embedded dev bundle
// and test stubs; production bundles typically carry tree ensembles.
type linearModel struct {
	coef      []float64
	intercept float64
}

func (m *linearModel) Predict(row []float64) float64 {
	sum := m.intercept
	for i, c := range m.coef {
		if i >= len(row) {
			break
		}
		sum += c * row[i]
	}
	return sum
}

func (m *linearModel) PredictBatch(rows [][]float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = m.Predict(row)
	}
	return out
}
