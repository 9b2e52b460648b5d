package engine

import (
	"fmt"

	"github.com/mrhapile/fish-health-diagnoser/pkg/rules"
	"github.com/mrhapile/fish-health-diagnoser/pkg/types"
)

// ModelRuleBased identifies the decision-rule prediction path.
const ModelRuleBased = "rule_based"

// Engine maps symptom observations to diagnoses using an ordered rule table.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	rules []Rule
}

// New builds an Engine evaluating rules in the given order.
func New(ruleSet ...Rule) (*Engine, error) {
	if len(ruleSet) == 0 {
		return nil, ErrNoRules
	}
	seen := make(map[string]struct{}, len(ruleSet))
	for i, r := range ruleSet {
		if r == nil {
			return nil, fmt.Errorf("rule %d: %w", i, ErrNilRule)
		}
		if _, dup := seen[r.ID()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, r.ID())
		}
		seen[r.ID()] = struct{}{}
	}
	return &Engine{rules: append([]Rule(nil), ruleSet...)}, nil
}

// NewDefault builds an Engine over DefaultRules.
func NewDefault() *Engine {
	return &Engine{rules: DefaultRules()}
}

// Predict diagnoses obs with the first rule whose symptoms are all present.
// An observation with no recognized symptom is Healthy, and one no rule
// accepts gets the fallback. obs is only read.
//
// A non-nil error wraps ErrRuleFault and means the returned result is the
// fallback outcome standing in for a failed evaluation.
func (e *Engine) Predict(obs types.Observation) (result types.DiagnosisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = fallback(obs)
			err = fmt.Errorf("%w: panic: %v", ErrRuleFault, r)
		}
	}()

	if len(obs.Present()) == 0 {
		return rules.Healthy(), nil
	}

	for _, rule := range e.rules {
		if !rule.Match(obs) {
			continue
		}
		d := rule.Diagnosis(obs).Clone()
		if verr := d.Validate(); verr != nil {
			return fallback(obs), fmt.Errorf("%w: rule %s: %v", ErrRuleFault, rule.ID(), verr)
		}
		d.Emergency = rules.IsEmergency(obs)
		return d, nil
	}

	return fallback(obs), nil
}

// Symptoms lists the recognized symptoms in vocabulary order.
func (e *Engine) Symptoms() []types.Symptom {
	return types.Symptoms()
}

// Diseases lists the known condition labels.
func (e *Engine) Diseases() []string {
	return types.Diseases()
}

// ModelType reports which prediction path serves requests.
func (e *Engine) ModelType() string {
	return ModelRuleBased
}

// RuleIDs returns the rule identifiers in evaluation order.
func (e *Engine) RuleIDs() []string {
	ids := make([]string, len(e.rules))
	for i, r := range e.rules {
		ids[i] = r.ID()
	}
	return ids
}

func fallback(obs types.Observation) types.DiagnosisResult {
	d := rules.Fallback()
	d.Emergency = rules.IsEmergency(obs)
	return d
}
