// Package rules implements the rule-matching and override engine that
// decides which lint tests run for a given font.
//
// A rule spec is a list of conditions and test selections. A condition
// says when to apply the following selection. They are processed in order
// and are cumulative, and where there is a conflict the last instructions
// win. Both conditions and selections can vary in specificity: a condition
// can simply name all fonts by a vendor, or a particular version of a
// particular font.
//
// At the end of the day we have a particular font and want to know which
// tests to run and which failures to ignore or report. rules builds that
// structure from a spec text:
//
//	ruleSet, err := rules.Parse(specText, nil)
//	...
//	tests := ruleSet.Resolve(attrs)
//	if tests.MustCheck("cmap/tables/missing") {
//		...
//	}
package rules
