package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/font"
)

// conditionFields lists the attribute slots a condition can constrain,
// in evaluation order. Note that monospace has no slot.
var conditionFields = []string{
	"filename", "name", "style", "script", "variant",
	"weight", "hinted", "vendor", "version",
}

// constraint is the tagged variant stored in one condition slot: either a
// literal exact-match value or a (relation, operand) pair. An absent slot
// means no constraint.
type constraint struct {
	literal  string
	relation Relation
	operand  string
	number   float64
	set      map[string]struct{}
	pattern  *regexp.Regexp
	isPair   bool
}

// matches evaluates the constraint against one attribute value. A numeric
// relation rejects a value that does not parse as a float; the operand
// side was validated at spec load time.
func (c *constraint) matches(value string) bool {
	if !c.isPair {
		return value == c.literal
	}
	switch {
	case c.relation.Numeric():
		lhs, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		return c.relation.compareFloats(lhs, c.number)
	case c.relation == RelationIs:
		return value == c.operand
	case c.relation == RelationIn:
		_, ok := c.set[value]
		return ok
	case c.relation == RelationLike:
		return c.pattern.MatchString(value)
	}
	return false
}

func (c *constraint) String() string {
	if !c.isPair {
		return c.literal
	}
	return c.relation.String() + " " + c.operand
}

// Condition is a conjunctive predicate over font attributes gating a block
// of enable/disable directives. It is mutated field by field during
// parsing and treated as read-only afterwards.
type Condition struct {
	constraints map[string]*constraint
}

// NewCondition creates an empty condition, which accepts every font
func NewCondition() *Condition {
	return &Condition{constraints: make(map[string]*constraint)}
}

// Modify sets, replaces or clears the constraint on one field. The
// relation token '*' clears the field. When no operand is supplied the
// relation token itself is stored as a literal exact-match value.
func (c *Condition) Modify(field, relationWord, operand string) error {
	if !isConditionField(field) {
		return errors.Newf(errors.ErrGrammar, "condition does not recognize field %q", field)
	}

	if relationWord == "*" {
		// no constraint
		delete(c.constraints, field)
		return nil
	}

	if operand == "" {
		// the relation token is the value
		c.constraints[field] = &constraint{literal: relationWord}
		return nil
	}

	relation, ok := ParseRelation(relationWord)
	if !ok {
		return errors.Newf(errors.ErrUnsupportedRelation, "unknown relation %q for field %q", relationWord, field)
	}

	cons := &constraint{relation: relation, operand: operand, isPair: true}
	switch {
	case relation.Numeric():
		number, err := strconv.ParseFloat(operand, 64)
		if err != nil {
			return errors.Wrapf(err, errors.ErrGrammar,
				"relation %s on field %q needs a numeric operand", relationWord, field)
		}
		cons.number = number
	case relation == RelationIn:
		cons.set = make(map[string]struct{})
		for _, alt := range strings.Split(operand, ",") {
			cons.set[alt] = struct{}{}
		}
	case relation == RelationLike:
		pattern, err := regexp.Compile(operand)
		if err != nil {
			return errors.Wrapf(err, errors.ErrGrammar,
				"relation like on field %q has an invalid pattern", field)
		}
		cons.pattern = pattern
	}
	c.constraints[field] = cons
	return nil
}

var clauseRx = regexp.MustCompile(`^(\S+)\s+(\S+)\s*(.*?)\s*$`)

// ModifyClause parses a condition segment of the form
// "field relationOrLiteral [operand]" and applies it via Modify.
func (c *Condition) ModifyClause(segment string) error {
	m := clauseRx.FindStringSubmatch(strings.TrimSpace(segment))
	if m == nil {
		return errors.Newf(errors.ErrGrammar, "condition could not match %q", segment)
	}
	return c.Modify(m[1], m[2], m[3])
}

// Copy returns a shallow copy. Constraints are immutable once stored, so
// sharing them between copies is safe.
func (c *Condition) Copy() *Condition {
	constraints := make(map[string]*constraint, len(c.constraints))
	for field, cons := range c.constraints {
		constraints[field] = cons
	}
	return &Condition{constraints: constraints}
}

// Accepts reports whether the font attributes satisfy every constrained
// field. It cannot fail: all operand validation happened at load time.
func (c *Condition) Accepts(attrs font.Attributes) bool {
	for _, field := range conditionFields {
		cons, ok := c.constraints[field]
		if !ok {
			continue
		}
		value, _ := attrs.Field(field)
		if !cons.matches(value) {
			return false
		}
	}
	return true
}

func (c *Condition) String() string {
	parts := make([]string, 0, len(c.constraints))
	for field, cons := range c.constraints {
		parts = append(parts, fmt.Sprintf("%s: %s", field, cons))
	}
	sort.Strings(parts)
	return "Condition(" + strings.Join(parts, ", ") + ")"
}

func isConditionField(name string) bool {
	for _, field := range conditionFields {
		if name == field {
			return true
		}
	}
	return false
}
