package types

// Symptom is a named boolean observation about a fish's condition.
type Symptom string

const (
	WhiteSpots       Symptom = "whiteSpots"
	FinRot           Symptom = "finRot"
	ClampedFins      Symptom = "clampedFins"
	LossOfAppetite   Symptom = "lossOfAppetite"
	Lethargy         Symptom = "lethargy"
	RapidBreathing   Symptom = "rapidBreathing"
	Bloating         Symptom = "bloating"
	Lesions          Symptom = "lesions"
	CloudyEyes       Symptom = "cloudyEyes"
	AbnormalSwimming Symptom = "abnormalSwimming"
)

// symptomVocabulary is ordered; a symptom's position is also its feature
// index in training vectors.
var symptomVocabulary = [...]Symptom{
	WhiteSpots,
	FinRot,
	ClampedFins,
	LossOfAppetite,
	Lethargy,
	RapidBreathing,
	Bloating,
	Lesions,
	CloudyEyes,
	AbnormalSwimming,
}

// SymptomCount is the size of the symptom vocabulary.
const SymptomCount = len(symptomVocabulary)

// Symptoms returns the recognized symptoms in vocabulary order.
// The returned slice is a copy and may be modified by the caller.
func Symptoms() []Symptom {
	out := make([]Symptom, SymptomCount)
	copy(out, symptomVocabulary[:])
	return out
}

// Index returns the vocabulary position of s, or -1 if s is not recognized.
func (s Symptom) Index() int {
	for i, known := range symptomVocabulary {
		if known == s {
			return i
		}
	}
	return -1
}

func (s Symptom) Known() bool {
	return s.Index() >= 0
}

func (s Symptom) String() string {
	return string(s)
}
