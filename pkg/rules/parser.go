package rules

import (
	"os"
	"strings"

	"github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/logging"
)

// Parse parses rule spec text and appends its blocks to the given rule
// set. A nil rule set starts a fresh one over the default catalog, so a
// file spec can be supplemented with extra inline spec text:
//
//	rs, err := rules.ParseFile(path, nil)
//	rs, err = rules.Parse(extra, rs)
//
// The grammar: '#' starts a line comment; statements are separated by
// newlines and/or ';'. A segment of exactly "condition" starts a fresh
// condition. "enable ..." and "disable ..." segments carry comma-separated
// tag clauses. Any other segment mutates a field of the current condition;
// the first such segment after an enable/disable closes the current block.
func Parse(text string, into *RuleSet) (*RuleSet, error) {
	log := logging.GetLogger("rules.parser")

	rs := into
	if rs == nil {
		rs = NewRuleSet(nil)
	}
	if text == "" {
		return rs, nil
	}

	condition := NewCondition()
	selection := NewSelection(rs.cat)
	pendingSelection := false

	// flush closes the current block. The condition is retained: field
	// segments after a flush keep refining it until a "condition" segment
	// resets it.
	flush := func() {
		if pendingSelection {
			rs.add(condition.Copy(), selection)
			selection = NewSelection(rs.cat)
			pendingSelection = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if ix := strings.Index(line, "#"); ix != -1 {
			line = line[:ix]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, segment := range strings.Split(line, ";") {
			segment = strings.TrimSpace(segment)
			switch {
			case segment == "condition":
				flush()
				condition = NewCondition()

			case strings.HasPrefix(segment, "enable "):
				for _, clause := range strings.Split(segment[len("enable "):], ",") {
					if err := selection.EnableClause(strings.TrimSpace(clause)); err != nil {
						return nil, err
					}
				}
				pendingSelection = true

			case strings.HasPrefix(segment, "disable "):
				for _, tag := range strings.Split(segment[len("disable "):], ",") {
					if err := selection.Disable(strings.TrimSpace(tag)); err != nil {
						return nil, err
					}
				}
				pendingSelection = true

			default:
				flush()
				if err := condition.ModifyClause(segment); err != nil {
					return nil, err
				}
			}
		}
	}
	flush()

	log.Debug().Int("blocks", rs.Len()).Msg("Parsed rule spec")
	return rs, nil
}

// ParseFile parses a rule spec file, appending to the given rule set as
// Parse does.
func ParseFile(path string, into *RuleSet) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "read spec file %q", path)
	}
	return Parse(string(data), into)
}
