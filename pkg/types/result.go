package types

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DiagnosisResult is the outcome of a single prediction.
type DiagnosisResult struct {
	Disease         string   `json:"disease"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	Emergency       bool     `json:"emergency"`
}

// Validate checks the shape every result handed to a client must have.
func (r DiagnosisResult) Validate() error {
	if strings.TrimSpace(r.Disease) == "" {
		return errors.New("diagnosis has no disease label")
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("diagnosis %q: confidence %v out of range [0,1]", r.Disease, r.Confidence)
	}
	if len(r.Recommendations) == 0 {
		return fmt.Errorf("diagnosis %q has no recommendations", r.Disease)
	}
	for i, rec := range r.Recommendations {
		if strings.TrimSpace(rec) == "" {
			return fmt.Errorf("diagnosis %q: recommendation %d is empty", r.Disease, i)
		}
	}
	return nil
}

// RequiresAlert reports whether the diagnosis is confident enough to notify
// the owner. Healthy outcomes never alert.
func (r DiagnosisResult) RequiresAlert() bool {
	return r.Disease != DiseaseHealthy && r.Confidence > AlertThreshold
}

// Clone returns a deep copy of r.
func (r DiagnosisResult) Clone() DiagnosisResult {
	r.Recommendations = slices.Clone(r.Recommendations)
	return r
}
