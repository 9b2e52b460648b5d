package types

// Condition labels reported by the decision rules.
const (
	DiseaseHealthy      = "Healthy"
	DiseaseIch          = "Ich (White Spot Disease)"
	DiseaseFinRot       = "Fin Rot or Bacterial Infection"
	DiseaseDropsy       = "Dropsy or Internal Infection"
	DiseaseWaterQuality = "Water Quality Issues or Gill Disease"

	// DiseaseUnknown is the sentinel label of the fallback outcome.
	DiseaseUnknown = "Unknown Condition"
)

// diseaseVocabulary is the closed set of condition labels known to the
// service and used as class labels by the offline trainer.
var diseaseVocabulary = [...]string{
	DiseaseIch,
	"Fin Rot",
	"Dropsy",
	"Swim Bladder Disorder",
	"Velvet Disease",
	"Pop-eye",
	"Columnaris",
	"Tuberculosis",
	"Hexamita",
	DiseaseHealthy,
}

// DiseaseCount is the size of the disease vocabulary.
const DiseaseCount = len(diseaseVocabulary)

// Diseases returns a copy of the disease vocabulary.
func Diseases() []string {
	out := make([]string, DiseaseCount)
	copy(out, diseaseVocabulary[:])
	return out
}

// DiseaseAt returns the label for class index i.
func DiseaseAt(i int) (string, bool) {
	if i < 0 || i >= DiseaseCount {
		return "", false
	}
	return diseaseVocabulary[i], true
}
