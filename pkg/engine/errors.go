package engine

import "errors"

var (
	// ErrRuleFault reports that rule evaluation failed and the fallback
	// outcome was returned in its place.
	ErrRuleFault = errors.New("rule evaluation fault")

	ErrNilRule       = errors.New("nil rule")
	ErrDuplicateRule = errors.New("duplicate rule id")
	ErrNoRules       = errors.New("no rules configured")
)
