package rules

import (
	"slices"

	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
)

var healthyRecommendations = []string{
	"Continue regular maintenance and observation",
	"Maintain good water quality",
	"Monitor fish behavior daily",
}

var fallbackRecommendations = []string{
	"Monitor fish closely for changes",
	"Improve water quality with partial water change",
	"Consider isolating the fish if symptoms worsen",
	"Consult with experienced aquarists or veterinarians",
}

// Healthy is the outcome for an observation with no symptom present.
func Healthy() types.DiagnosisResult {
	return types.DiagnosisResult{
		Disease:         types.DiseaseHealthy,
		Confidence:      types.ConfidenceHealthy,
		Recommendations: slices.Clone(healthyRecommendations),
	}
}

// Fallback is the outcome when symptoms are present but no rule recognizes
// them, and whenever rule evaluation itself fails.
func Fallback() types.DiagnosisResult {
	return types.DiagnosisResult{
		Disease:         types.DiseaseUnknown,
		Confidence:      types.ConfidenceLow,
		Recommendations: slices.Clone(fallbackRecommendations),
	}
}
