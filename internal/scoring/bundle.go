package scoring

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Varshitha-vasamsetti/eco-pack-ai/internal/features"
)

// Bundle is the full set of inference artifacts exported by the offline
// training pipeline: fitted encoders, scaler parameters, and the three
// regressors. Loaded once at startup and read-only afterwards.
type Bundle struct {
	Encoders  features.Encoders
	Scaler    *Scaler
	Predictor *Predictor
}

type bundleFile struct {
	FeatureColumns []string            `json:"feature_columns"`
	Encoders       map[string][]string `json:"encoders"`
	Scaler         struct {
		Mean []float64 `json:"mean"`
		Std  []float64 `json:"std"`
	} `json:"scaler"`
	Models struct {
		Suitability modelSpec `json:"suitability"`
		CO2         modelSpec `json:"co2"`
		Cost        modelSpec `json:"cost"`
	} `json:"models"`
}

type modelSpec struct {
	Type      string     `json:"type"`
	Coef      []float64  `json:"coef,omitempty"`
	Intercept float64    `json:"intercept,omitempty"`
	Aggregate string     `json:"aggregate,omitempty"`
	BaseScore float64    `json:"base_score,omitempty"`
	Shrinkage float64    `json:"shrinkage,omitempty"`
	Trees     []treeSpec `json:"trees,omitempty"`
}

type treeSpec struct {
	Feature   []int     `json:"feature"`
	Threshold []float64 `json:"threshold"`
	Left      []int     `json:"left"`
	Right     []int     `json:"right"`
	Value     []float64 `json:"value"`
}

// LoadBundle parses and validates a model bundle. The bundle's feature
// schema must match features.Columns exactly, set and order both; a mismatch
// means the artifacts were exported against a different pipeline version and
// the process must not serve predictions from them.
func LoadBundle(r io.Reader) (*Bundle, error) {
	var file bundleFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode model bundle: %w", err)
	}

	if !features.SameSchema(file.FeatureColumns) {
		return nil, fmt.Errorf("%w: bundle columns %v do not match pipeline schema",
			features.ErrSchemaMismatch, file.FeatureColumns)
	}

	fragility, ok := file.Encoders["fragility_level"]
	if !ok || len(fragility) == 0 {
		return nil, fmt.Errorf("model bundle missing fragility_level encoder")
	}
	materialType, ok := file.Encoders["material_type"]
	if !ok || len(materialType) == 0 {
		return nil, fmt.Errorf("model bundle missing material_type encoder")
	}

	scaler, err := NewScaler(file.Scaler.Mean, file.Scaler.Std)
	if err != nil {
		return nil, err
	}

	suitability, err := buildRegressor("suitability", file.Models.Suitability)
	if err != nil {
		return nil, err
	}
	co2, err := buildRegressor("co2", file.Models.CO2)
	if err != nil {
		return nil, err
	}
	cost, err := buildRegressor("cost", file.Models.Cost)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Encoders: features.Encoders{
			FragilityLevel: features.NewLabelEncoder(fragility),
			MaterialType:   features.NewLabelEncoder(materialType),
		},
		Scaler: scaler,
		Predictor: &Predictor{
			Suitability: suitability,
			CO2:         co2,
			Cost:        cost,
		},
	}, nil
}

func buildRegressor(name string, spec modelSpec) (Regressor, error) {
	switch spec.Type {
	case "linear":
		if len(spec.Coef) != len(features.Columns) {
			return nil, fmt.Errorf("%w: %s model has %d coefficients, schema has %d",
				features.ErrSchemaMismatch, name, len(spec.Coef), len(features.Columns))
		}
		return &linearModel{coef: spec.Coef, intercept: spec.Intercept}, nil

	case "tree_ensemble":
		if len(spec.Trees) == 0 {
			return nil, fmt.Errorf("%s model has no trees", name)
		}
		ensemble := &treeEnsemble{
			average:   spec.Aggregate != "sum",
			baseScore: spec.BaseScore,
			shrinkage: spec.Shrinkage,
		}
		if !ensemble.average && ensemble.shrinkage == 0 {
			ensemble.shrinkage = 1
		}
		for i, ts := range spec.Trees {
			tree := regressionTree{
				feature:   ts.Feature,
				threshold: ts.Threshold,
				left:      ts.Left,
				right:     ts.Right,
				value:     ts.Value,
			}
			if err := tree.validate(len(features.Columns)); err != nil {
				return nil, fmt.Errorf("%s model tree %d: %w", name, i, err)
			}
			ensemble.trees = append(ensemble.trees, tree)
		}
		return ensemble, nil

	default:
		return nil, fmt.Errorf("%s model has unsupported type %q", name, spec.Type)
	}
}
