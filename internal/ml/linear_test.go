package ml_test

import (
	"testing"

	"github.com/murean5/ML-OPS/internal/ml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linearData(n int) ([][]float64, []float64) {
	features := make([][]float64, n)
	targets := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		features[i] = []float64{x, 2 * x}
		targets[i] = 3*x + 1
	}
	return features, targets
}

func TestLinearFitRecoversRelationship(t *testing.T) {
	features, targets := linearData(20)

	estimator, err := ml.NewEstimator(ml.TypeLinear, nil)
	require.NoError(t, err)

	weights, err := estimator.Fit(features, targets)
	require.NoError(t, err)
	assert.Equal(t, ml.TypeLinear, weights.Type)
	assert.Equal(t, 2, weights.NumFeatures)

	predictions, err := ml.Predict(weights, [][]float64{{5, 10}, {10, 20}})
	require.NoError(t, err)
	assert.InDelta(t, 16.0, predictions[0], 0.5)
	assert.InDelta(t, 31.0, predictions[1], 0.5)
}

func TestLinearFitIsDeterministic(t *testing.T) {
	features, targets := linearData(15)

	estimator, err := ml.NewEstimator(ml.TypeLinear, map[string]float64{"alpha": 0.1, "max_iter": 500})
	require.NoError(t, err)

	first, err := estimator.Fit(features, targets)
	require.NoError(t, err)
	second, err := estimator.Fit(features, targets)
	require.NoError(t, err)

	assert.Equal(t, first.Linear.Coefficients, second.Linear.Coefficients)
	assert.Equal(t, first.Linear.Intercept, second.Linear.Intercept)
}

func TestLinearFitRejectsTooFewRows(t *testing.T) {
	estimator, err := ml.NewEstimator(ml.TypeLinear, nil)
	require.NoError(t, err)

	_, err = estimator.Fit([][]float64{{1}}, []float64{2})
	assert.Error(t, err)
}

func TestLinearHyperparameterValidation(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]float64
		field  string
	}{
		{"negative alpha", map[string]float64{"alpha": -1}, "alpha"},
		{"zero max_iter", map[string]float64{"max_iter": 0}, "max_iter"},
		{"fractional max_iter", map[string]float64{"max_iter": 1.5}, "max_iter"},
		{"unknown key", map[string]float64{"learning_rate": 0.1}, "learning_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ml.NewEstimator(ml.TypeLinear, tt.params)
			var invalid *ml.InvalidHyperparameterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Name)
		})
	}
}

func TestUnknownModelType(t *testing.T) {
	_, err := ml.NewEstimator("gradient_boosting", nil)
	assert.ErrorIs(t, err, ml.ErrUnknownModelType)
}

func TestPredictShapeCheck(t *testing.T) {
	features, targets := linearData(10)

	estimator, err := ml.NewEstimator(ml.TypeLinear, nil)
	require.NoError(t, err)
	weights, err := estimator.Fit(features, targets)
	require.NoError(t, err)

	_, err = ml.Predict(weights, [][]float64{{1, 2, 3}})
	assert.Error(t, err)
}
