package rules

import (
	"testing"

	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
	"github.com/stretchr/testify/require"
)

type rule interface {
	ID() string
	Match(obs types.Observation) bool
	Diagnosis(obs types.Observation) types.DiagnosisResult
}

func TestRules_Conjunctions(t *testing.T) {
	tests := []struct {
		rule    rule
		pair    [2]types.Symptom
		disease string
	}{
		{&IchRule{}, [2]types.Symptom{types.WhiteSpots, types.LossOfAppetite}, types.DiseaseIch},
		{&FinRotRule{}, [2]types.Symptom{types.FinRot, types.Lesions}, types.DiseaseFinRot},
		{&DropsyRule{}, [2]types.Symptom{types.Bloating, types.Lethargy}, types.DiseaseDropsy},
		{&WaterQualityRule{}, [2]types.Symptom{types.RapidBreathing, types.ClampedFins}, types.DiseaseWaterQuality},
	}

	for _, tt := range tests {
		t.Run(tt.rule.ID(), func(t *testing.T) {
			req := require.New(t)
			a, b := string(tt.pair[0]), string(tt.pair[1])

			req.True(tt.rule.Match(types.Observation{a: true, b: true}))
			req.False(tt.rule.Match(types.Observation{a: true}))
			req.False(tt.rule.Match(types.Observation{b: true}))
			req.False(tt.rule.Match(types.Observation{a: true, b: false}))
			req.False(tt.rule.Match(types.Observation{}))

			d := tt.rule.Diagnosis(types.Observation{a: true, b: true})
			req.Equal(tt.disease, d.Disease)
			req.Len(d.Recommendations, 4)
			req.NoError(d.Validate())
		})
	}
}

func TestOutcomes(t *testing.T) {
	req := require.New(t)

	healthy := Healthy()
	req.Equal(types.DiseaseHealthy, healthy.Disease)
	req.Equal(0.95, healthy.Confidence)
	req.NoError(healthy.Validate())

	fb := Fallback()
	req.Equal(types.DiseaseUnknown, fb.Disease)
	req.Equal(0.30, fb.Confidence)
	req.Len(fb.Recommendations, 4)

	fb.Recommendations[0] = "changed"
	req.NotEqual("changed", Fallback().Recommendations[0])
}

func TestIsEmergency(t *testing.T) {
	req := require.New(t)

	req.True(IsEmergency(types.Observation{"rapidBreathing": true}))
	req.True(IsEmergency(types.Observation{"bloating": true}))
	req.True(IsEmergency(types.Observation{"lesions": true}))
	req.False(IsEmergency(types.Observation{"whiteSpots": true, "lesions": false}))
	req.False(IsEmergency(nil))
}
