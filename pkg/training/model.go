package training

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
	"github.com/samber/lo"
)

// ModelKind identifies the classifier family stored in an artifact.
const ModelKind = "bernoulli_naive_bayes"

var ErrEmptyDataset = errors.New("empty dataset")

// Model is a Bernoulli naive Bayes classifier over symptom vectors.
type Model struct {
	Kind              string      `json:"kind"`
	FeatureNames      []string    `json:"feature_names"`
	ClassNames        []string    `json:"class_names"`
	Alpha             float64     `json:"alpha"`
	ClassLogPrior     []float64   `json:"class_log_prior"`
	FeatureLogProb    [][]float64 `json:"feature_log_prob"`
	FeatureLogNegProb [][]float64 `json:"feature_log_neg_prob"`
}

// Fit estimates class priors and per-class feature probabilities with
// additive smoothing. Classes absent from ds keep a smoothed, non-zero prior.
func Fit(ds Dataset, alpha float64) (*Model, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}
	if alpha <= 0 {
		alpha = 1
	}
	nClasses, nFeatures := types.DiseaseCount, types.SymptomCount

	classCount := make([]float64, nClasses)
	featureCount := make([][]float64, nClasses)
	for c := range featureCount {
		featureCount[c] = make([]float64, nFeatures)
	}
	for _, s := range ds {
		if s.Label < 0 || s.Label >= nClasses {
			return nil, fmt.Errorf("sample label %d out of range", s.Label)
		}
		if len(s.Features) != nFeatures {
			return nil, fmt.Errorf("sample has %d features, want %d", len(s.Features), nFeatures)
		}
		classCount[s.Label]++
		for j, present := range s.Features {
			if present {
				featureCount[s.Label][j]++
			}
		}
	}

	m := &Model{
		Kind:              ModelKind,
		FeatureNames:      symptomNames(),
		ClassNames:        types.Diseases(),
		Alpha:             alpha,
		ClassLogPrior:     make([]float64, nClasses),
		FeatureLogProb:    make([][]float64, nClasses),
		FeatureLogNegProb: make([][]float64, nClasses),
	}
	total := float64(len(ds))
	for c := 0; c < nClasses; c++ {
		m.ClassLogPrior[c] = math.Log((classCount[c] + alpha) / (total + alpha*float64(nClasses)))
		m.FeatureLogProb[c] = make([]float64, nFeatures)
		m.FeatureLogNegProb[c] = make([]float64, nFeatures)
		for j := 0; j < nFeatures; j++ {
			p := (featureCount[c][j] + alpha) / (classCount[c] + 2*alpha)
			m.FeatureLogProb[c][j] = math.Log(p)
			m.FeatureLogNegProb[c][j] = math.Log(1 - p)
		}
	}
	return m, nil
}

// Predict returns the most likely class index. Ties go to the lower index.
func (m *Model) Predict(features []bool) int {
	best, bestScore := 0, math.Inf(-1)
	for c := range m.ClassLogPrior {
		score := m.ClassLogPrior[c]
		for j, present := range features {
			if j >= len(m.FeatureLogProb[c]) {
				break
			}
			if present {
				score += m.FeatureLogProb[c][j]
			} else {
				score += m.FeatureLogNegProb[c][j]
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// PredictLabel classifies an observation and returns the class label.
func (m *Model) PredictLabel(obs types.Observation) string {
	return m.ClassNames[m.Predict(obs.Vector())]
}

// SaveModel writes m as indented JSON.
func SaveModel(path string, m *Model) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

// LoadModel reads a model written by SaveModel.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if m.Kind != ModelKind {
		return nil, fmt.Errorf("unsupported model kind %q", m.Kind)
	}
	if len(m.ClassLogPrior) != len(m.ClassNames) || len(m.FeatureLogProb) != len(m.ClassNames) {
		return nil, errors.New("model class tables are inconsistent")
	}
	return &m, nil
}

func symptomNames() []string {
	return lo.Map(types.Symptoms(), func(s types.Symptom, _ int) string {
		return s.String()
	})
}
