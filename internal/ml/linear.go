package ml

import (
	"errors"
	"math"
)

const (
	defaultMaxIter      = 1000
	linearLearningRate  = 0.1
	defaultLinearAlpha  = 0.0
	minLinearSampleSize = 2
)

// linearEstimator fits a ridge-regularized linear model with gradient descent
// on standardized features. Hyperparameters: alpha (L2 penalty, >= 0) and
// max_iter (> 0).
type linearEstimator struct {
	alpha   float64
	maxIter int
}

func newLinearEstimator(params map[string]float64) (*linearEstimator, error) {
	if err := checkKnownKeys(params, "alpha", "max_iter"); err != nil {
		return nil, err
	}

	alpha, ok := params["alpha"]
	if !ok {
		alpha = defaultLinearAlpha
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha < 0 {
		return nil, &InvalidHyperparameterError{Name: "alpha", Reason: "must be >= 0"}
	}

	maxIter, err := intParam(params, "max_iter", defaultMaxIter, 1)
	if err != nil {
		return nil, err
	}

	return &linearEstimator{alpha: alpha, maxIter: maxIter}, nil
}

// LinearWeights holds coefficients in the original (unstandardized) feature
// space so prediction is a plain dot product.
type LinearWeights struct {
	Coefficients []float64
	Intercept    float64
}

func (w *LinearWeights) predict(rows [][]float64) []float64 {
	outputs := make([]float64, len(rows))
	for i, row := range rows {
		value := w.Intercept
		for j, x := range row {
			value += w.Coefficients[j] * x
		}
		outputs[i] = value
	}
	return outputs
}

func (e *linearEstimator) Fit(features [][]float64, targets []float64) (*Weights, error) {
	n := len(features)
	if n < minLinearSampleSize {
		return nil, errors.New("not enough rows to fit a linear model")
	}
	p := len(features[0])

	xMean, xScale := columnStats(features)
	yMean, yScale := vectorStats(targets)

	// Standardized copies keep gradient descent stable regardless of the
	// original feature scales.
	std := make([][]float64, n)
	stdY := make([]float64, n)
	for i := range features {
		row := make([]float64, p)
		for j := range row {
			row[j] = (features[i][j] - xMean[j]) / xScale[j]
		}
		std[i] = row
		stdY[i] = (targets[i] - yMean) / yScale
	}

	coef := make([]float64, p)
	grad := make([]float64, p)
	for iter := 0; iter < e.maxIter; iter++ {
		for j := range grad {
			grad[j] = 0
		}
		for i, row := range std {
			pred := 0.0
			for j, x := range row {
				pred += coef[j] * x
			}
			resid := pred - stdY[i]
			for j, x := range row {
				grad[j] += resid * x
			}
		}
		for j := range coef {
			coef[j] -= linearLearningRate * (grad[j] + e.alpha*coef[j]) / float64(n)
		}
	}

	// Map back into the original feature space.
	weights := &LinearWeights{Coefficients: make([]float64, p)}
	for j := range coef {
		weights.Coefficients[j] = coef[j] * yScale / xScale[j]
	}
	weights.Intercept = yMean
	for j := range weights.Coefficients {
		weights.Intercept -= weights.Coefficients[j] * xMean[j]
	}

	for _, c := range weights.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.New("linear training diverged")
		}
	}

	return &Weights{Type: TypeLinear, NumFeatures: p, Linear: weights}, nil
}

func columnStats(rows [][]float64) (means, scales []float64) {
	p := len(rows[0])
	means = make([]float64, p)
	scales = make([]float64, p)
	n := float64(len(rows))

	for _, row := range rows {
		for j, x := range row {
			means[j] += x
		}
	}
	for j := range means {
		means[j] /= n
	}

	for _, row := range rows {
		for j, x := range row {
			d := x - means[j]
			scales[j] += d * d
		}
	}
	for j := range scales {
		scales[j] = math.Sqrt(scales[j] / n)
		if scales[j] == 0 {
			scales[j] = 1 // constant column
		}
	}
	return means, scales
}

func vectorStats(values []float64) (mean, scale float64) {
	n := float64(len(values))
	for _, v := range values {
		mean += v
	}
	mean /= n

	for _, v := range values {
		d := v - mean
		scale += d * d
	}
	scale = math.Sqrt(scale / n)
	if scale == 0 {
		scale = 1
	}
	return mean, scale
}
