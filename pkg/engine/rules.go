package engine

import (
	"github.com/mrhapile/fish-health-diagnoser/pkg/rules"
	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
)

// Rule is one hand-authored symptom pattern and the diagnosis it implies.
type Rule interface {
	// ID names the rule; it must be unique within an Engine.
	ID() string

	// Match reports whether every symptom the rule requires is present.
	Match(obs types.Observation) bool

	// Diagnosis is the rule's outcome. The engine calls it only after Match.
	Diagnosis(obs types.Observation) types.DiagnosisResult
}

// DefaultRules returns the built-in rules in priority order. Only the first
// matching rule applies.
func DefaultRules() []Rule {
	return []Rule{
		&rules.IchRule{},
		&rules.FinRotRule{},
		&rules.DropsyRule{},
		&rules.WaterQualityRule{},
	}
}
