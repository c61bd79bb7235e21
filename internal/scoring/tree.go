package scoring

import "fmt"

// regressionTree is a single decision tree in flattened array form, the
// layout the offline exporter writes. Node i splits on feature[i] at
// threshold[i]; left/right hold child indices; feature[i] < 0 marks a leaf
// whose prediction is value[i].
type regressionTree struct {
	feature   []int
	threshold []float64
	left      []int
	right     []int
	value     []float64
}

func (t *regressionTree) predict(row []float64) float64 {
	node := 0
	for t.feature[node] >= 0 {
		if row[t.feature[node]] <= t.threshold[node] {
			node = t.left[node]
		} else {
			node = t.right[node]
		}
	}
	return t.value[node]
}

func (t *regressionTree) validate(numFeatures int) error {
	n := len(t.feature)
	if n == 0 || len(t.threshold) != n || len(t.left) != n || len(t.right) != n || len(t.value) != n {
		return fmt.Errorf("tree arrays have inconsistent lengths")
	}
	for i := 0; i < n; i++ {
		if t.feature[i] >= numFeatures {
			return fmt.Errorf("tree node %d splits on feature %d, schema has %d", i, t.feature[i], numFeatures)
		}
		if t.feature[i] >= 0 {
			if t.left[i] < 0 || t.left[i] >= n || t.right[i] < 0 || t.right[i] >= n {
				return fmt.Errorf("tree node %d has child index out of range", i)
			}
		}
	}
	return nil
}

// treeEnsemble aggregates regression trees. With aggregate="average" it
// behaves like a random forest; with aggregate="sum" plus shrinkage and a
// base score it matches a gradient-boosted export.
type treeEnsemble struct {
	trees     []regressionTree
	average   bool
	baseScore float64
	shrinkage float64
}

func (e *treeEnsemble) Predict(row []float64) float64 {
	sum := 0.0
	for i := range e.trees {
		sum += e.trees[i].predict(row)
	}
	if e.average {
		return sum / float64(len(e.trees))
	}
	return e.baseScore + e.shrinkage*sum
}

func (e *treeEnsemble) PredictBatch(rows [][]float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = e.Predict(row)
	}
	return out
}
