package ml

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

const (
	defaultNumTrees        = 100
	defaultMaxDepth        = 10
	defaultMinSamplesSplit = 2

	// Fixed training seed: retraining on identical data yields an identical
	// ensemble, and no randomness is left for inference time.
	forestSeed = 1
)

// forestEstimator fits an ensemble of bootstrap-sampled regression trees.
// Hyperparameters: n_estimators (> 0), max_depth (> 0), min_samples_split
// (>= 2).
type forestEstimator struct {
	numTrees        int
	maxDepth        int
	minSamplesSplit int
}

func newForestEstimator(params map[string]float64) (*forestEstimator, error) {
	if err := checkKnownKeys(params, "n_estimators", "max_depth", "min_samples_split"); err != nil {
		return nil, err
	}

	numTrees, err := intParam(params, "n_estimators", defaultNumTrees, 1)
	if err != nil {
		return nil, err
	}
	maxDepth, err := intParam(params, "max_depth", defaultMaxDepth, 1)
	if err != nil {
		return nil, err
	}
	minSplit, err := intParam(params, "min_samples_split", defaultMinSamplesSplit, 2)
	if err != nil {
		return nil, err
	}

	return &forestEstimator{numTrees: numTrees, maxDepth: maxDepth, minSamplesSplit: minSplit}, nil
}

type TreeNode struct {
	Feature   int       `json:",omitempty"`
	Threshold float64   `json:",omitempty"`
	Left      *TreeNode `json:",omitempty"`
	Right     *TreeNode `json:",omitempty"`
	Leaf      bool      `json:",omitempty"`
	Value     float64   `json:",omitempty"`
}

type ForestWeights struct {
	Trees []*TreeNode
}

func (w *ForestWeights) predict(rows [][]float64) []float64 {
	outputs := make([]float64, len(rows))
	for i, row := range rows {
		sum := 0.0
		for _, tree := range w.Trees {
			sum += tree.eval(row)
		}
		outputs[i] = sum / float64(len(w.Trees))
	}
	return outputs
}

func (n *TreeNode) eval(row []float64) float64 {
	node := n
	for !node.Leaf {
		if row[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

func (e *forestEstimator) Fit(features [][]float64, targets []float64) (*Weights, error) {
	n := len(features)
	if n == 0 {
		return nil, errors.New("no rows to fit")
	}
	if e.minSamplesSplit > n {
		return nil, &InvalidHyperparameterError{Name: "min_samples_split", Reason: "exceeds the number of training rows"}
	}
	p := len(features[0])

	rng := rand.New(rand.NewSource(forestSeed))
	trees := make([]*TreeNode, e.numTrees)
	for t := range trees {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = rng.Intn(n)
		}
		trees[t] = e.buildTree(features, targets, indices, 0)
	}

	return &Weights{Type: TypeRandomForest, NumFeatures: p, Forest: &ForestWeights{Trees: trees}}, nil
}

func (e *forestEstimator) buildTree(features [][]float64, targets []float64, indices []int, depth int) *TreeNode {
	mean := 0.0
	for _, i := range indices {
		mean += targets[i]
	}
	mean /= float64(len(indices))

	if depth >= e.maxDepth || len(indices) < e.minSamplesSplit || isConstant(targets, indices) {
		return &TreeNode{Leaf: true, Value: mean}
	}

	feature, threshold, ok := bestSplit(features, targets, indices)
	if !ok {
		return &TreeNode{Leaf: true, Value: mean}
	}

	var left, right []int
	for _, i := range indices {
		if features[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &TreeNode{Leaf: true, Value: mean}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      e.buildTree(features, targets, left, depth+1),
		Right:     e.buildTree(features, targets, right, depth+1),
	}
}

func isConstant(targets []float64, indices []int) bool {
	for _, i := range indices[1:] {
		if targets[i] != targets[indices[0]] {
			return false
		}
	}
	return true
}

// bestSplit scans every feature and every midpoint between adjacent distinct
// values, picking the split with the lowest weighted variance.
func bestSplit(features [][]float64, targets []float64, indices []int) (int, float64, bool) {
	bestFeature, bestThreshold := -1, 0.0
	bestScore := math.Inf(1)
	p := len(features[indices[0]])

	values := make([]float64, 0, len(indices))
	for feature := 0; feature < p; feature++ {
		values = values[:0]
		for _, i := range indices {
			values = append(values, features[i][feature])
		}
		sort.Float64s(values)

		for k := 1; k < len(values); k++ {
			if values[k] == values[k-1] {
				continue
			}
			threshold := (values[k] + values[k-1]) / 2

			score, ok := splitScore(features, targets, indices, feature, threshold)
			if ok && score < bestScore {
				bestScore = score
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func splitScore(features [][]float64, targets []float64, indices []int, feature int, threshold float64) (float64, bool) {
	var leftSum, leftSq, rightSum, rightSq float64
	var leftN, rightN int

	for _, i := range indices {
		y := targets[i]
		if features[i][feature] <= threshold {
			leftSum += y
			leftSq += y * y
			leftN++
		} else {
			rightSum += y
			rightSq += y * y
			rightN++
		}
	}
	if leftN == 0 || rightN == 0 {
		return 0, false
	}

	leftVar := leftSq - leftSum*leftSum/float64(leftN)
	rightVar := rightSq - rightSum*rightSum/float64(rightN)
	return leftVar + rightVar, true
}
