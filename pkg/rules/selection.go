package rules

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/fontlint/pkg/catalog"
	"github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/intset"
)

// Selection accumulates the enable/disable directives of one rule block:
// which tags were touched at all, which of those ended up enabled, and any
// per-tag filter attached via a relation clause. A tag in touched but not
// in enabled was explicitly disabled by this block.
type Selection struct {
	cat     *catalog.Catalog
	touched catalog.TagSet
	enabled catalog.TagSet
	filters map[string]*intset.Filter
}

// NewSelection creates an empty selection over the given catalog
func NewSelection(cat *catalog.Catalog) *Selection {
	return &Selection{
		cat:     cat,
		touched: make(catalog.TagSet),
		enabled: make(catalog.TagSet),
		filters: make(map[string]*intset.Filter),
	}
}

// Enable enables the tag and its entire subtree. When a relation is
// supplied the tag must resolve to exactly one catalog entry, the entry
// must declare relation and arg-type patterns allowing the clause, and the
// argument is parsed into a filter: code points (cp) in hex, glyph IDs
// (gid) in decimal. Relation word "except" makes the filter reject set
// members; any other allowed word makes it accept only set members.
func (s *Selection) Enable(tag, relation, argType, arg string) error {
	tags, err := s.cat.ResolveScope(tag)
	if err != nil {
		return err
	}

	if relation != "" {
		if len(tags) > 1 {
			return errors.Newf(errors.ErrMultiTagFilter, "filter on %q would apply to %d tags", tag, len(tags))
		}
		for t := range tags {
			tag = t
		}
		if err := s.setFilter(tag, relation, argType, arg); err != nil {
			return err
		}
	}

	for t := range tags {
		s.touched[t] = struct{}{}
		s.enabled[t] = struct{}{}
	}
	return nil
}

func (s *Selection) setFilter(tag, relation, argType, arg string) error {
	entry, _ := s.cat.Entry(tag)
	if !entry.AllowsOptions() {
		return errors.Newf(errors.ErrUnsupportedRelation, "tag %q does not allow filter clauses", tag)
	}
	if !entry.AllowsRelation(relation) {
		return errors.Newf(errors.ErrUnsupportedRelation, "tag %q does not allow relation %q", tag, relation)
	}
	if !entry.AllowsArgType(argType) {
		return errors.Newf(errors.ErrArgTypeMismatch, "tag %q and relation %q do not allow arg type %q", tag, relation, argType)
	}

	var isHex bool
	switch argType {
	case "cp":
		isHex = true
	case "gid":
		isHex = false
	default:
		return errors.Newf(errors.ErrArgTypeMismatch, "unsupported arg type %q", argType)
	}

	set, err := intset.Parse(arg, isHex)
	if err != nil {
		return err
	}
	s.filters[tag] = intset.NewFilter(relation != "except", set)
	return nil
}

var enableClauseRx = regexp.MustCompile(`^\s*([0-9a-z/_]+)(?:\s+(except|only)\s+(cp|gid)\s+(.*))?\s*$`)

// EnableClause parses one comma-delimited enable clause of the form
// "tag [ (except|only) (cp|gid) values ]" and applies it via Enable.
func (s *Selection) EnableClause(clause string) error {
	m := enableClauseRx.FindStringSubmatch(clause)
	if m == nil {
		return errors.Newf(errors.ErrGrammar, "could not parse enable clause %q", clause)
	}
	return s.Enable(m[1], m[2], m[3], m[4])
}

// Disable disables the tag and its entire subtree. No filter is possible.
func (s *Selection) Disable(tag string) error {
	tags, err := s.cat.ResolveScope(tag)
	if err != nil {
		return err
	}
	for t := range tags {
		s.touched[t] = struct{}{}
		delete(s.enabled, t)
	}
	return nil
}

// apply folds this block onto a running result: touched tags are removed,
// then the block's enabled tags are added back, so the last writer wins.
// Filters for every touched tag are cleared before the block's own filters
// for still-enabled tags are stored.
func (s *Selection) apply(result catalog.TagSet, filters map[string]*intset.Filter) {
	for t := range s.touched {
		delete(result, t)
		delete(filters, t)
	}
	for t := range s.enabled {
		result[t] = struct{}{}
		if f, ok := s.filters[t]; ok {
			filters[t] = f
		}
	}
}

func (s *Selection) String() string {
	var enableList, disableList []string
	for t := range s.touched {
		if s.enabled.Contains(t) {
			enableList = append(enableList, t)
		} else {
			disableList = append(disableList, t)
		}
	}
	sort.Strings(enableList)
	sort.Strings(disableList)

	var output []string
	if len(enableList) > 0 {
		output = append(output, "enable:")
		output = append(output, enableList...)
	}
	if len(disableList) > 0 {
		output = append(output, "disable:")
		output = append(output, disableList...)
	}
	return strings.Join(output, "\n")
}
