package training

import (
	"math/rand/v2"

	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
)

// Class indexes into the disease vocabulary used as training labels.
const (
	ClassIch    = 0
	ClassFinRot = 1
	ClassDropsy = 2
)

// Sample is one labelled symptom vector.
type Sample struct {
	Features []bool
	Label    int
}

// Dataset is an ordered collection of samples.
type Dataset []Sample

// newRand returns the deterministic generator shared by data synthesis and
// splitting.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
}

// GenerateSynthetic draws n random symptom vectors with uniformly random
// labels, then overrides the label where a known pattern is present so the
// classifier has something to learn.
func GenerateSynthetic(n int, seed int64) Dataset {
	r := newRand(seed)
	ds := make(Dataset, n)
	for i := range ds {
		features := make([]bool, types.SymptomCount)
		for j := range features {
			features[j] = r.IntN(2) == 1
		}
		ds[i] = Sample{
			Features: features,
			Label:    patternLabel(features, r.IntN(types.DiseaseCount)),
		}
	}
	return ds
}

func patternLabel(f []bool, label int) int {
	has := func(s types.Symptom) bool { return f[s.Index()] }
	switch {
	case has(types.WhiteSpots) && has(types.LossOfAppetite):
		return ClassIch
	case has(types.FinRot) && has(types.Lesions):
		return ClassFinRot
	case has(types.Bloating) && has(types.Lethargy):
		return ClassDropsy
	default:
		return label
	}
}

// ClassCounts returns the number of samples per class.
func (ds Dataset) ClassCounts() []int {
	counts := make([]int, types.DiseaseCount)
	for _, s := range ds {
		counts[s.Label]++
	}
	return counts
}
