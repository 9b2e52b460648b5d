package types

// Observation maps reported symptom identifiers to presence flags.
// Keys outside the symptom vocabulary are ignored and absent keys read as
// not present.
type Observation map[string]bool

// Has reports whether s was flagged as present. Unknown symptoms are never
// present.
func (o Observation) Has(s Symptom) bool {
	if !s.Known() {
		return false
	}
	return o[string(s)]
}

// All reports whether every given symptom is present.
func (o Observation) All(symptoms ...Symptom) bool {
	if len(symptoms) == 0 {
		return false
	}
	for _, s := range symptoms {
		if !o.Has(s) {
			return false
		}
	}
	return true
}

// Any reports whether at least one of the given symptoms is present.
func (o Observation) Any(symptoms ...Symptom) bool {
	for _, s := range symptoms {
		if o.Has(s) {
			return true
		}
	}
	return false
}

// Present returns the recognized symptoms flagged as present, in vocabulary
// order.
func (o Observation) Present() []Symptom {
	var present []Symptom
	for _, s := range symptomVocabulary {
		if o[string(s)] {
			present = append(present, s)
		}
	}
	return present
}

// Vector encodes the observation as a feature vector indexed by vocabulary
// position.
func (o Observation) Vector() []bool {
	v := make([]bool, SymptomCount)
	for i, s := range symptomVocabulary {
		v[i] = o[string(s)]
	}
	return v
}
