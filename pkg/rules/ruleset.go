package rules

import (
	"strings"

	"github.com/arthur-debert/fontlint/pkg/catalog"
	"github.com/arthur-debert/fontlint/pkg/font"
	"github.com/arthur-debert/fontlint/pkg/intset"
	"github.com/arthur-debert/fontlint/pkg/logging"
)

// rule is one condition gating one selection block
type rule struct {
	condition *Condition
	selection *Selection
}

// RuleSet is an ordered list of condition/selection pairs, append-only
// during parsing and read-only thereafter. One rule set is typically built
// once from a spec file and resolved against many fonts.
type RuleSet struct {
	cat   *catalog.Catalog
	rules []rule
}

// NewRuleSet creates an empty rule set over the given catalog. A nil
// catalog selects the default one.
func NewRuleSet(cat *catalog.Catalog) *RuleSet {
	if cat == nil {
		cat = catalog.Default()
	}
	return &RuleSet{cat: cat}
}

// Catalog returns the catalog this rule set resolves tags against
func (rs *RuleSet) Catalog() *catalog.Catalog {
	return rs.cat
}

// Len returns the number of rule blocks
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

func (rs *RuleSet) add(condition *Condition, selection *Selection) {
	rs.rules = append(rs.rules, rule{condition: condition, selection: selection})
}

// Resolve computes the test set for one font. Every catalog tag starts
// enabled; each rule block whose condition accepts the font is folded onto
// the result in order, so later blocks override earlier ones for any tag
// they touch. Resolve cannot fail once the rule set is built.
func (rs *RuleSet) Resolve(attrs font.Attributes) *TestSet {
	log := logging.GetLogger("rules.resolve")

	result := make(catalog.TagSet, rs.cat.Len())
	for _, tag := range rs.cat.Tags() {
		result[tag] = struct{}{}
	}
	filters := make(map[string]*intset.Filter)

	matched := 0
	for _, r := range rs.rules {
		if r.condition.Accepts(attrs) {
			r.selection.apply(result, filters)
			matched++
		}
	}

	log.Debug().
		Str("font", attrs.Filename).
		Int("matchedBlocks", matched).
		Int("totalBlocks", len(rs.rules)).
		Int("enabledTags", len(result)).
		Int("filters", len(filters)).
		Msg("Resolved test set")

	return newTestSet(rs.cat, result, filters)
}

func (rs *RuleSet) String() string {
	blocks := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		blocks[i] = r.condition.String() + "\n" + r.selection.String()
	}
	return "spec:\n" + strings.Join(blocks, "\nspec:\n")
}
