package rules

import (
	"github.com/arthur-debert/fontlint/pkg/catalog"
	"github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/intset"
)

// TestSet is the resolved view for one font: the enabled tags, their
// filters, and an audit of which tags were actually queried during a
// validation pass. A TestSet must not be shared across concurrent
// validation passes; the run/skip logs mutate on every query.
type TestSet struct {
	cat     *catalog.Catalog
	enabled catalog.TagSet
	filters map[string]*intset.Filter
	runLog  catalog.TagSet
	skipLog catalog.TagSet
}

func newTestSet(cat *catalog.Catalog, enabled catalog.TagSet, filters map[string]*intset.Filter) *TestSet {
	return &TestSet{
		cat:     cat,
		enabled: enabled,
		filters: filters,
		runLog:  make(catalog.TagSet),
		skipLog: make(catalog.TagSet),
	}
}

// Check reports whether the test named by tag should run for this font,
// and records the query in the run or skip log. A tag not in the catalog
// is an error.
func (ts *TestSet) Check(tag string) (bool, error) {
	if !ts.cat.Has(tag) {
		return false, errors.Newf(errors.ErrUnknownTag, "unrecognized tag %q", tag)
	}
	run := ts.enabled.Contains(tag)
	if run {
		ts.runLog[tag] = struct{}{}
	} else {
		ts.skipLog[tag] = struct{}{}
	}
	return run, nil
}

// MustCheck is like Check but panics on an unknown tag. Validation checks
// query fixed tag literals, so an unknown tag there is a programming error.
func (ts *TestSet) MustCheck(tag string) bool {
	run, err := ts.Check(tag)
	if err != nil {
		panic(err)
	}
	return run
}

// CheckValue is like Check, additionally consulting the tag's filter when
// one is configured: the test only counts as "should run" if the tag is
// enabled and the filter accepts the value.
func (ts *TestSet) CheckValue(tag string, value int) (bool, error) {
	run, err := ts.Check(tag)
	if err != nil {
		return false, err
	}
	if run {
		if f, ok := ts.filters[tag]; ok {
			run = f.Accept(value)
		}
	}
	return run, nil
}

// MustCheckValue is like CheckValue but panics on an unknown tag
func (ts *TestSet) MustCheckValue(tag string, value int) bool {
	run, err := ts.CheckValue(tag, value)
	if err != nil {
		panic(err)
	}
	return run
}

// Filter returns the filter configured for tag, or nil when there is
// none. A tag not in the catalog is an error.
func (ts *TestSet) Filter(tag string) (*intset.Filter, error) {
	if !ts.cat.Has(tag) {
		return nil, errors.Newf(errors.ErrUnknownTag, "unrecognized tag %q", tag)
	}
	return ts.filters[tag], nil
}

// Catalog returns the catalog this test set was resolved against
func (ts *TestSet) Catalog() *catalog.Catalog {
	return ts.cat
}

// Enabled returns the enabled tags, sorted
func (ts *TestSet) Enabled() []string {
	return ts.enabled.Sorted()
}

// IsEnabled reports whether tag resolved as enabled without touching the
// run/skip logs.
func (ts *TestSet) IsEnabled(tag string) bool {
	return ts.enabled.Contains(tag)
}

// RunLog returns the tags that were queried and reported as "run", sorted
func (ts *TestSet) RunLog() []string {
	return ts.runLog.Sorted()
}

// SkipLog returns the tags that were queried and reported as "skip", sorted
func (ts *TestSet) SkipLog() []string {
	return ts.skipLog.Sorted()
}
