package types

// Confidence constants attached to each decision outcome.
// These are static heuristic values, not probabilistic.
const (
	// ConfidenceHealthy is assigned when no symptom is reported.
	ConfidenceHealthy = 0.95

	// ConfidenceIch is assigned to white spots with loss of appetite.
	ConfidenceIch = 0.85

	// ConfidenceWaterQuality is assigned to rapid breathing with clamped fins.
	ConfidenceWaterQuality = 0.8

	// ConfidenceFinRot is assigned to fin rot with lesions.
	ConfidenceFinRot = 0.75

	// ConfidenceDropsy is assigned to bloating with lethargy.
	ConfidenceDropsy = 0.7

	// ConfidenceLow is the fallback for symptom patterns no rule recognizes.
	ConfidenceLow = 0.3
)

// AlertThreshold is the confidence above which a diagnosis warrants notifying
// the fish owner.
const AlertThreshold = 0.7
