package ml_test

import (
	"testing"

	"github.com/murean5/ML-OPS/internal/ml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepData() ([][]float64, []float64) {
	// Two clearly separable clusters so a shallow tree can split them.
	features := [][]float64{
		{1, 0}, {2, 1}, {3, 0}, {2, -1},
		{10, 0}, {11, 1}, {12, 0}, {11, -1},
	}
	targets := []float64{5, 5, 5, 5, 50, 50, 50, 50}
	return features, targets
}

func TestForestFitSeparatesClusters(t *testing.T) {
	features, targets := stepData()

	estimator, err := ml.NewEstimator(ml.TypeRandomForest, map[string]float64{"n_estimators": 20})
	require.NoError(t, err)

	weights, err := estimator.Fit(features, targets)
	require.NoError(t, err)
	assert.Equal(t, ml.TypeRandomForest, weights.Type)
	assert.Len(t, weights.Forest.Trees, 20)

	predictions, err := ml.Predict(weights, [][]float64{{2, 0}, {11, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, predictions[0], 10.0)
	assert.InDelta(t, 50.0, predictions[1], 10.0)
	assert.Less(t, predictions[0], predictions[1])
}

func TestForestFitIsDeterministic(t *testing.T) {
	features, targets := stepData()

	estimator, err := ml.NewEstimator(ml.TypeRandomForest, map[string]float64{"n_estimators": 10, "max_depth": 4})
	require.NoError(t, err)

	first, err := estimator.Fit(features, targets)
	require.NoError(t, err)
	second, err := estimator.Fit(features, targets)
	require.NoError(t, err)

	rows := [][]float64{{1, 0}, {6, 0}, {11, 0}}
	p1, err := ml.Predict(first, rows)
	require.NoError(t, err)
	p2, err := ml.Predict(second, rows)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestForestMinSamplesSplitExceedsRows(t *testing.T) {
	estimator, err := ml.NewEstimator(ml.TypeRandomForest, map[string]float64{"min_samples_split": 100})
	require.NoError(t, err)

	features, targets := stepData()
	_, err = estimator.Fit(features, targets)
	var invalid *ml.InvalidHyperparameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "min_samples_split", invalid.Name)
}

func TestForestHyperparameterValidation(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]float64
		field  string
	}{
		{"negative n_estimators", map[string]float64{"n_estimators": -1}, "n_estimators"},
		{"zero max_depth", map[string]float64{"max_depth": 0}, "max_depth"},
		{"min_samples_split below 2", map[string]float64{"min_samples_split": 1}, "min_samples_split"},
		{"fractional n_estimators", map[string]float64{"n_estimators": 2.5}, "n_estimators"},
		{"unknown key", map[string]float64{"criterion": 1}, "criterion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ml.NewEstimator(ml.TypeRandomForest, tt.params)
			var invalid *ml.InvalidHyperparameterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Name)
		})
	}
}

func TestForestWeightsSurviveEncoding(t *testing.T) {
	features, targets := stepData()

	estimator, err := ml.NewEstimator(ml.TypeRandomForest, map[string]float64{"n_estimators": 5})
	require.NoError(t, err)
	weights, err := estimator.Fit(features, targets)
	require.NoError(t, err)

	encoded, err := ml.EncodeWeights(weights)
	require.NoError(t, err)
	decoded, err := ml.DecodeWeights(encoded)
	require.NoError(t, err)

	rows := [][]float64{{2, 0}, {11, 1}}
	original, err := ml.Predict(weights, rows)
	require.NoError(t, err)
	restored, err := ml.Predict(decoded, rows)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}
