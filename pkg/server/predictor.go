package server

import "github.com/mrhapile/fish-health-diagnoser/pkg/types"

//go:generate go run go.uber.org/mock/mockgen -source=predictor.go -destination=../mocks/mock_predictor.go -package=mocks

// Predictor is the decision engine consumed by the HTTP handlers.
type Predictor interface {
	Predict(obs types.Observation) (types.DiagnosisResult, error)
	Symptoms() []types.Symptom
	Diseases() []string
	ModelType() string
}
