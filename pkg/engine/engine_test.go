package engine

import (
	"sync"
	"testing"

	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPredict_EmptyObservation(t *testing.T) {
	req := require.New(t)
	result, err := NewDefault().Predict(types.Observation{})

	req.NoError(err)
	req.Equal(types.DiseaseHealthy, result.Disease)
	req.Equal(0.95, result.Confidence)
	req.Len(result.Recommendations, 3)
	req.False(result.Emergency)
}

func TestPredict_NoFlagRaised(t *testing.T) {
	req := require.New(t)
	obs := types.Observation{}
	for _, s := range types.Symptoms() {
		obs[string(s)] = false
	}

	result, err := NewDefault().Predict(obs)

	req.NoError(err)
	req.Equal(types.DiseaseHealthy, result.Disease)
	req.Equal(types.ConfidenceHealthy, result.Confidence)
}

func TestPredict_Rules(t *testing.T) {
	tests := []struct {
		name       string
		obs        types.Observation
		disease    string
		confidence float64
		emergency  bool
	}{
		{
			name:       "ich",
			obs:        types.Observation{"whiteSpots": true, "lossOfAppetite": true, "finRot": false},
			disease:    types.DiseaseIch,
			confidence: 0.85,
		},
		{
			name:       "fin rot",
			obs:        types.Observation{"finRot": true, "lesions": true},
			disease:    types.DiseaseFinRot,
			confidence: 0.75,
			emergency:  true,
		},
		{
			name:       "dropsy",
			obs:        types.Observation{"bloating": true, "lethargy": true},
			disease:    types.DiseaseDropsy,
			confidence: 0.70,
			emergency:  true,
		},
		{
			name:       "water quality",
			obs:        types.Observation{"rapidBreathing": true, "clampedFins": true},
			disease:    types.DiseaseWaterQuality,
			confidence: 0.80,
			emergency:  true,
		},
		{
			name:       "single symptom falls back",
			obs:        types.Observation{"cloudyEyes": true},
			disease:    types.DiseaseUnknown,
			confidence: 0.30,
		},
		{
			name:       "half of every conjunction falls back",
			obs:        types.Observation{"whiteSpots": true, "finRot": true, "bloating": true, "rapidBreathing": true},
			disease:    types.DiseaseUnknown,
			confidence: 0.30,
			emergency:  true,
		},
	}

	e := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := e.Predict(tt.obs)

			req.NoError(err)
			req.Equal(tt.disease, result.Disease)
			req.Equal(tt.confidence, result.Confidence)
			req.Len(result.Recommendations, 4)
			for _, rec := range result.Recommendations {
				req.NotEmpty(rec)
			}
			req.Equal(tt.emergency, result.Emergency)
		})
	}
}

func TestPredict_IchRegardlessOfOtherFlags(t *testing.T) {
	e := NewDefault()
	others := []types.Symptom{
		types.FinRot, types.ClampedFins, types.Lethargy, types.RapidBreathing,
		types.Bloating, types.Lesions, types.CloudyEyes, types.AbnormalSwimming,
	}

	// every subset of the remaining eight symptoms
	for mask := 0; mask < 1<<len(others); mask++ {
		obs := types.Observation{"whiteSpots": true, "lossOfAppetite": true}
		for i, s := range others {
			obs[string(s)] = mask&(1<<i) != 0
		}
		result, err := e.Predict(obs)
		require.NoError(t, err)
		require.Equal(t, types.DiseaseIch, result.Disease, "mask=%b", mask)
		require.Equal(t, types.ConfidenceIch, result.Confidence, "mask=%b", mask)
	}
}

func TestPredict_FirstMatchWins(t *testing.T) {
	req := require.New(t)
	obs := types.Observation{
		"whiteSpots":     true,
		"lossOfAppetite": true,
		"finRot":         true,
		"lesions":        true,
	}

	result, err := NewDefault().Predict(obs)

	req.NoError(err)
	req.Equal(types.DiseaseIch, result.Disease)
}

func TestPredict_NonMatchingRuleOrderIrrelevant(t *testing.T) {
	req := require.New(t)
	reordered, err := New(&stubRule{id: "never"}, DefaultRules()[3], DefaultRules()[0])
	req.NoError(err)

	result, err := reordered.Predict(types.Observation{"whiteSpots": true, "lossOfAppetite": true})

	req.NoError(err)
	req.Equal(types.DiseaseIch, result.Disease)
}

func TestPredict_UnknownKeysIgnored(t *testing.T) {
	req := require.New(t)
	e := NewDefault()

	healthy, err := e.Predict(types.Observation{"gillFlukes": true, "WHITESPOTS": true})
	req.NoError(err)
	req.Equal(types.DiseaseHealthy, healthy.Disease)

	base := types.Observation{"bloating": true, "lethargy": true}
	noisy := types.Observation{"bloating": true, "lethargy": true, "gillFlukes": true, "": true}
	r1, _ := e.Predict(base)
	r2, _ := e.Predict(noisy)
	req.Equal(r1, r2)
}

func TestPredict_Deterministic(t *testing.T) {
	req := require.New(t)
	e := NewDefault()
	obs := types.Observation{"finRot": true, "lesions": true, "cloudyEyes": true}

	first, _ := e.Predict(obs)
	for range 5 {
		again, err := e.Predict(obs)
		req.NoError(err)
		req.Equal(first, again)
	}
}

func TestPredict_ResultsAreIndependent(t *testing.T) {
	req := require.New(t)
	e := NewDefault()

	first, _ := e.Predict(types.Observation{})
	first.Recommendations[0] = "mutated"

	second, _ := e.Predict(types.Observation{})
	req.NotEqual("mutated", second.Recommendations[0])
}

func TestPredict_DoesNotMutateInput(t *testing.T) {
	req := require.New(t)
	obs := types.Observation{"whiteSpots": true, "lossOfAppetite": true, "extra": false}
	before := map[string]bool{"whiteSpots": true, "lossOfAppetite": true, "extra": false}

	_, _ = NewDefault().Predict(obs)

	req.Equal(before, map[string]bool(obs))
}

func TestPredict_Concurrent(t *testing.T) {
	e := NewDefault()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				result, err := e.Predict(types.Observation{"rapidBreathing": true, "clampedFins": true})
				if err != nil || result.Disease != types.DiseaseWaterQuality {
					t.Errorf("unexpected result %+v, err %v", result, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestPredict_PanickingRuleFailsClosed(t *testing.T) {
	req := require.New(t)
	e, err := New(&stubRule{id: "boom", panics: true})
	req.NoError(err)

	result, err := e.Predict(types.Observation{"lesions": true})

	req.ErrorIs(err, ErrRuleFault)
	req.Equal(types.DiseaseUnknown, result.Disease)
	req.Equal(types.ConfidenceLow, result.Confidence)
	req.True(result.Emergency)
	req.NoError(result.Validate())
}

func TestPredict_InvalidDiagnosisFailsClosed(t *testing.T) {
	req := require.New(t)
	broken := &stubRule{
		id:      "broken",
		matches: true,
		result:  types.DiagnosisResult{Disease: "Broken", Confidence: 1.7},
	}
	e, err := New(broken)
	req.NoError(err)

	result, err := e.Predict(types.Observation{"finRot": true})

	req.ErrorIs(err, ErrRuleFault)
	req.ErrorContains(err, "broken")
	req.Equal(types.DiseaseUnknown, result.Disease)
}

func TestPredict_HealthySkipsRules(t *testing.T) {
	req := require.New(t)
	e, err := New(&stubRule{id: "boom", panics: true})
	req.NoError(err)

	result, err := e.Predict(types.Observation{})

	req.NoError(err)
	req.Equal(types.DiseaseHealthy, result.Disease)
}

func TestNew_Validation(t *testing.T) {
	req := require.New(t)

	_, err := New()
	req.ErrorIs(err, ErrNoRules)

	_, err = New(&stubRule{id: "a"}, nil)
	req.ErrorIs(err, ErrNilRule)

	_, err = New(&stubRule{id: "a"}, &stubRule{id: "a"})
	req.ErrorIs(err, ErrDuplicateRule)

	e, err := New(DefaultRules()...)
	req.NoError(err)
	req.Equal([]string{"ich-white-spot", "fin-rot", "dropsy", "water-quality"}, e.RuleIDs())
}

func TestVocabularies(t *testing.T) {
	req := require.New(t)
	e := NewDefault()

	req.Equal([]types.Symptom{
		"whiteSpots", "finRot", "clampedFins", "lossOfAppetite", "lethargy",
		"rapidBreathing", "bloating", "lesions", "cloudyEyes", "abnormalSwimming",
	}, e.Symptoms())
	req.Len(e.Diseases(), 10)
	req.Contains(e.Diseases(), types.DiseaseHealthy)
	req.Equal(ModelRuleBased, e.ModelType())
}

type stubRule struct {
	id      string
	matches bool
	panics  bool
	result  types.DiagnosisResult
}

func (r *stubRule) ID() string { return r.id }

func (r *stubRule) Match(types.Observation) bool {
	if r.panics {
		panic("corrupted rule table")
	}
	return r.matches
}

func (r *stubRule) Diagnosis(types.Observation) types.DiagnosisResult { return r.result }
