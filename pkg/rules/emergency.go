package rules

import "github.com/mrhapile/fish-health-diagnoser/pkg/types"

// emergencySymptoms need attention regardless of the diagnosed condition.
var emergencySymptoms = []types.Symptom{
	types.RapidBreathing,
	types.Bloating,
	types.Lesions,
}

// IsEmergency reports whether any emergency symptom is present.
func IsEmergency(obs types.Observation) bool {
	return obs.Any(emergencySymptoms...)
}
