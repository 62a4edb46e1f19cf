package rules

import "strings"

const (
	// RuleB3S23 is the birth/survival notation of Conway's rule.
	RuleB3S23 = "B3/S23"
	// RuleSurvivalBirth is the same rule in the XLife "survival/birth" notation.
	RuleSurvivalBirth = "23/3"
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// IsConway reports whether a rule string in B/S notation names Conway's rule.
// The comparison ignores case and surrounding blanks.
func IsConway(rule string) bool {
	return strings.EqualFold(strings.TrimSpace(rule), RuleB3S23)
}

// IsConwaySurvivalBirth reports whether an XLife "#r" rule names Conway's rule.
// Unlike IsConway the match is exact.
func IsConwaySurvivalBirth(rule string) bool {
	return strings.TrimSpace(rule) == RuleSurvivalBirth
}
