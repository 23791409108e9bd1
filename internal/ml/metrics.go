package ml

import (
	"fmt"
	"math"
)

const (
	MetricR2   = "r2"
	MetricMAE  = "mae"
	MetricMSE  = "mse"
	MetricRMSE = "rmse"

	evalRatio   = 0.2
	minEvalRows = 5
)

// SplitTrainEval applies the fixed evaluation policy: the first 80% of rows
// train, the last 20% evaluate. There is no shuffling, so repeated training
// on the same dataset produces identical metrics. Datasets below 5 rows are
// evaluated in-sample.
func SplitTrainEval(features [][]float64, targets []float64) (trainX [][]float64, trainY []float64, evalX [][]float64, evalY []float64) {
	n := len(features)
	if n < minEvalRows {
		return features, targets, features, targets
	}

	cut := n - int(float64(n)*evalRatio)
	return features[:cut], targets[:cut], features[cut:], targets[cut:]
}

// Evaluate computes R2, MAE, MSE and RMSE of the fitted weights on the given
// rows. Non-finite values are dropped from the result rather than persisted.
func Evaluate(w *Weights, features [][]float64, targets []float64) (map[string]float64, error) {
	predictions, err := Predict(w, features)
	if err != nil {
		return nil, fmt.Errorf("error evaluating model: %w", err)
	}

	n := float64(len(targets))
	mean := 0.0
	for _, y := range targets {
		mean += y
	}
	mean /= n

	var absErr, sqErr, totalSq float64
	for i, y := range targets {
		diff := predictions[i] - y
		absErr += math.Abs(diff)
		sqErr += diff * diff
		totalSq += (y - mean) * (y - mean)
	}

	mse := sqErr / n
	r2 := 0.0
	if totalSq > 0 {
		r2 = 1 - sqErr/totalSq
	} else if sqErr == 0 {
		r2 = 1
	}

	metrics := map[string]float64{
		MetricR2:   r2,
		MetricMAE:  absErr / n,
		MetricMSE:  mse,
		MetricRMSE: math.Sqrt(mse),
	}
	for name, value := range metrics {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			delete(metrics, name)
		}
	}
	return metrics, nil
}
