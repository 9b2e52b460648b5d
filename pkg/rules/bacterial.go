package rules

import "github.com/mrhapile/fish-health-diagnoser/pkg/types"

// FinRotRule detects fin rot or a bacterial infection from fin decay with
// open lesions.
type FinRotRule struct{}

func (r *FinRotRule) ID() string {
	return "fin-rot"
}

func (r *FinRotRule) Match(obs types.Observation) bool {
	return obs.All(types.FinRot, types.Lesions)
}

func (r *FinRotRule) Diagnosis(_ types.Observation) types.DiagnosisResult {
	return types.DiagnosisResult{
		Disease:    types.DiseaseFinRot,
		Confidence: types.ConfidenceFinRot,
		Recommendations: []string{
			"Improve water quality with immediate water change",
			"Use antibacterial medication for fin rot",
			"Ensure proper filtration system is working",
			"Test water parameters regularly",
		},
	}
}

// DropsyRule detects dropsy or an internal infection from a bloated, lethargic
// fish.
type DropsyRule struct{}

func (r *DropsyRule) ID() string {
	return "dropsy"
}

func (r *DropsyRule) Match(obs types.Observation) bool {
	return obs.All(types.Bloating, types.Lethargy)
}

func (r *DropsyRule) Diagnosis(_ types.Observation) types.DiagnosisResult {
	return types.DiagnosisResult{
		Disease:    types.DiseaseDropsy,
		Confidence: types.ConfidenceDropsy,
		Recommendations: []string{
			"Isolate affected fish immediately",
			"Try antibacterial food or medication",
			"Add Epsom salt bath (1 tsp per gallon)",
			"This condition has low survival rate, focus on prevention",
		},
	}
}
