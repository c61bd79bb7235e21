package scoring

import (
	"fmt"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/features"
)

// Scaler standardizes feature rows with mean/variance parameters fitted
// offline on the training set. The same parameters that produced the
// training features must be loaded here, or predictions are meaningless.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// NewScaler validates the parameter vectors against the feature schema.
func NewScaler(mean, std []float64) (*Scaler, error) {
	if len(mean) != len(features.Columns) || len(std) != len(features.Columns) {
		return nil, fmt.Errorf("%w: scaler has %d/%d parameters, schema has %d columns",
			features.ErrSchemaMismatch, len(mean), len(std), len(features.Columns))
	}
	return &Scaler{Mean: mean, Std: std}, nil
}

// Transform standardizes a single feature row in place-safe fashion.
func (s *Scaler) Transform(row []float64) ([]float64, error) {
	if len(row) != len(s.Mean) {
		return nil, fmt.Errorf("%w: row has %d values, scaler expects %d",
			features.ErrSchemaMismatch, len(row), len(s.Mean))
	}
	out := make([]float64, len(row))
	for i, v := range row {
		std := s.Std[i]
		if std == 0 {
			// Zero-variance column: pass through centered, matching the
			// fitted scaler's behavior.
			std = 1
		}
		out[i] = (v - s.Mean[i]) / std
	}
	return out, nil
}

// TransformBatch standardizes every row of a feature matrix.
func (s *Scaler) TransformBatch(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled, err := s.Transform(row)
		if err != nil {
			return nil, err
		}
		out[i] = scaled
	}
	return out, nil
}
