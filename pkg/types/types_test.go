package types

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestSymptoms_StableOrder(t *testing.T) {
	req := require.New(t)

	first := Symptoms()
	req.Len(first, 10)
	first[0] = "mutated"

	second := Symptoms()
	req.Equal(WhiteSpots, second[0])
	req.Equal(AbnormalSwimming, second[9])
	for i, s := range second {
		req.Equal(i, s.Index())
		req.True(s.Known())
	}
	req.Equal(-1, Symptom("gillFlukes").Index())
}

func TestDiseases(t *testing.T) {
	req := require.New(t)

	diseases := Diseases()
	req.Len(diseases, DiseaseCount)
	req.Equal(10, DiseaseCount)
	req.Equal(DiseaseHealthy, diseases[9])

	label, ok := DiseaseAt(0)
	req.True(ok)
	req.Equal(DiseaseIch, label)
	_, ok = DiseaseAt(10)
	req.False(ok)
}

func TestObservation_Lookup(t *testing.T) {
	req := require.New(t)
	obs := Observation{"whiteSpots": true, "finRot": false, "unknownThing": true}

	req.True(obs.Has(WhiteSpots))
	req.False(obs.Has(FinRot))
	req.False(obs.Has(Lesions), "absent key reads as not present")
	req.False(obs.Has("unknownThing"), "unknown key is never present")

	req.True(obs.All(WhiteSpots))
	req.False(obs.All(WhiteSpots, Lesions))
	req.False(obs.All())
	req.True(obs.Any(Lesions, WhiteSpots))
	req.False(obs.Any())

	req.Equal([]Symptom{WhiteSpots}, obs.Present())
	req.Empty(Observation(nil).Present())
}

func TestObservation_Vector(t *testing.T) {
	req := require.New(t)
	obs := Observation{"lossOfAppetite": true, "abnormalSwimming": true, "other": true}

	v := obs.Vector()
	req.Len(v, SymptomCount)
	req.True(v[3])
	req.True(v[9])
	req.False(v[0])
	req.Equal(2, lo.Count(v, true))
}

func TestDiagnosisResult_Validate(t *testing.T) {
	tests := []struct {
		name    string
		result  DiagnosisResult
		wantErr bool
	}{
		{"valid", DiagnosisResult{Disease: "X", Confidence: 0.5, Recommendations: []string{"a"}}, false},
		{"missing label", DiagnosisResult{Confidence: 0.5, Recommendations: []string{"a"}}, true},
		{"confidence above one", DiagnosisResult{Disease: "X", Confidence: 1.2, Recommendations: []string{"a"}}, true},
		{"negative confidence", DiagnosisResult{Disease: "X", Confidence: -0.1, Recommendations: []string{"a"}}, true},
		{"no recommendations", DiagnosisResult{Disease: "X", Confidence: 0.5}, true},
		{"blank recommendation", DiagnosisResult{Disease: "X", Confidence: 0.5, Recommendations: []string{" "}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDiagnosisResult_RequiresAlert(t *testing.T) {
	req := require.New(t)

	req.True(DiagnosisResult{Disease: DiseaseIch, Confidence: ConfidenceIch}.RequiresAlert())
	req.False(DiagnosisResult{Disease: DiseaseDropsy, Confidence: ConfidenceDropsy}.RequiresAlert())
	req.False(DiagnosisResult{Disease: DiseaseHealthy, Confidence: ConfidenceHealthy}.RequiresAlert())
}
