package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

const (
	TypeLinear       = "linear"
	TypeRandomForest = "random_forest"
)

var ErrUnknownModelType = errors.New("unknown model type")

func AvailableTypes() []string {
	return []string{TypeLinear, TypeRandomForest}
}

// InvalidHyperparameterError names the offending parameter so callers can
// surface it directly.
type InvalidHyperparameterError struct {
	Name   string
	Reason string
}

func (e *InvalidHyperparameterError) Error() string {
	return fmt.Sprintf("invalid hyperparameter %q: %s", e.Name, e.Reason)
}

// Estimator is the capability set shared by all model types. New types are
// added as new variants behind NewEstimator, not by embedding a base trainer.
type Estimator interface {
	Fit(features [][]float64, targets []float64) (*Weights, error)
}

// NewEstimator validates the hyperparameters for the requested type and
// returns the matching variant. Validation failures happen here, before any
// model record exists.
func NewEstimator(modelType string, params map[string]float64) (Estimator, error) {
	switch modelType {
	case TypeLinear:
		return newLinearEstimator(params)
	case TypeRandomForest:
		return newForestEstimator(params)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModelType, modelType)
	}
}

// ValidateRequest checks a train request without constructing anything else.
func ValidateRequest(modelType string, params map[string]float64) error {
	_, err := NewEstimator(modelType, params)
	return err
}

// Weights is the serialized form of a fitted model, stored as a JSON blob in
// the artifact store. Exactly one of the variant fields is set.
type Weights struct {
	Type        string
	NumFeatures int

	Linear *LinearWeights `json:",omitempty"`
	Forest *ForestWeights `json:",omitempty"`
}

func EncodeWeights(w *Weights) ([]byte, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("could not serialize weights: %w", err)
	}
	return data, nil
}

func DecodeWeights(data []byte) (*Weights, error) {
	var w Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("could not deserialize weights: %w", err)
	}
	return &w, nil
}

// Predict runs inference with fitted weights. Inference is pure: identical
// weights and rows always produce identical outputs.
func Predict(w *Weights, rows [][]float64) ([]float64, error) {
	for i, row := range rows {
		if len(row) != w.NumFeatures {
			return nil, fmt.Errorf("row %d has %d features, model expects %d", i, len(row), w.NumFeatures)
		}
	}

	switch w.Type {
	case TypeLinear:
		if w.Linear == nil {
			return nil, errors.New("linear weights missing")
		}
		return w.Linear.predict(rows), nil
	case TypeRandomForest:
		if w.Forest == nil {
			return nil, errors.New("forest weights missing")
		}
		return w.Forest.predict(rows), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModelType, w.Type)
	}
}

func checkKnownKeys(params map[string]float64, known ...string) error {
	for name := range params {
		recognized := false
		for _, k := range known {
			if name == k {
				recognized = true
				break
			}
		}
		if !recognized {
			return &InvalidHyperparameterError{Name: name, Reason: "not recognized for this model type"}
		}
	}
	return nil
}

func intParam(params map[string]float64, name string, fallback, minimum int) (int, error) {
	value, ok := params[name]
	if !ok {
		return fallback, nil
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, &InvalidHyperparameterError{Name: name, Reason: "must be an integer"}
	}
	n := int(value)
	if n < minimum {
		return 0, &InvalidHyperparameterError{Name: name, Reason: fmt.Sprintf("must be >= %d", minimum)}
	}
	return n, nil
}
