package rules

import "github.com/mrhapile/fish-health-diagnoser/pkg/types"

// IchRule detects white spot disease from visible spots with loss of appetite.
type IchRule struct{}

func (r *IchRule) ID() string {
	return "ich-white-spot"
}

func (r *IchRule) Match(obs types.Observation) bool {
	return obs.All(types.WhiteSpots, types.LossOfAppetite)
}

func (r *IchRule) Diagnosis(_ types.Observation) types.DiagnosisResult {
	return types.DiagnosisResult{
		Disease:    types.DiseaseIch,
		Confidence: types.ConfidenceIch,
		Recommendations: []string{
			"Increase water temperature to 80-82°F gradually",
			"Use ich medication according to instructions",
			"Add aquarium salt if suitable for your fish",
			"Increase aeration during treatment",
		},
	}
}
