package rules

import "github.com/mrhapile/fish-health-diagnoser/pkg/types"

// WaterQualityRule detects poor water quality or gill disease from rapid
// breathing with clamped fins.
type WaterQualityRule struct{}

func (r *WaterQualityRule) ID() string {
	return "water-quality"
}

func (r *WaterQualityRule) Match(obs types.Observation) bool {
	return obs.All(types.RapidBreathing, types.ClampedFins)
}

func (r *WaterQualityRule) Diagnosis(_ types.Observation) types.DiagnosisResult {
	return types.DiagnosisResult{
		Disease:    types.DiseaseWaterQuality,
		Confidence: types.ConfidenceWaterQuality,
		Recommendations: []string{
			"Test water parameters immediately (ammonia, nitrite, nitrate)",
			"Perform 25-50% water change",
			"Check filtration system and clean if needed",
			"Reduce feeding until parameters stabilize",
		},
	}
}
