// Test Type: Unit Test
// Description: Tests for the rules package - rule folding and test set resolution

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontlint/pkg/catalog"
	"github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/font"
	"github.com/arthur-debert/fontlint/pkg/rules"
)

func fontAttrs(t *testing.T, path string) font.Attributes {
	t.Helper()
	attrs, err := font.FromFilename(path)
	require.NoError(t, err)
	return attrs
}

func resolve(t *testing.T, text string, attrs font.Attributes) *rules.TestSet {
	t.Helper()
	rs, err := rules.Parse(text, nil)
	require.NoError(t, err)
	return rs.Resolve(attrs)
}

func TestRuleSet_EmptySpecEnablesEverything(t *testing.T) {
	rs := rules.NewRuleSet(nil)
	ts := rs.Resolve(font.Attributes{})

	assert.Len(t, ts.Enabled(), catalog.Default().Len())
	assert.True(t, ts.IsEnabled("reachable"))
	assert.True(t, ts.IsEnabled("bounds/glyph/ymax"))
}

func TestRuleSet_LastWriterWins(t *testing.T) {
	attrs := fontAttrs(t, "NotoSans-Regular.ttf")

	t.Run("disable_then_enable", func(t *testing.T) {
		ts := resolve(t, "disable cmap\ncondition\nenable cmap/tables", attrs)
		assert.True(t, ts.IsEnabled("cmap/tables"))
		assert.True(t, ts.IsEnabled("cmap/tables/missing"))
		assert.False(t, ts.IsEnabled("cmap/private_use"))
	})

	t.Run("enable_then_disable", func(t *testing.T) {
		ts := resolve(t, "enable cmap/tables\ncondition\ndisable cmap", attrs)
		assert.False(t, ts.IsEnabled("cmap/tables"))
		assert.False(t, ts.IsEnabled("cmap/private_use"))
	})

	t.Run("disjoint_disables_are_independent", func(t *testing.T) {
		ts := resolve(t, "disable paths\ncondition\ndisable stem", attrs)
		assert.False(t, ts.IsEnabled("paths/extrema"))
		assert.False(t, ts.IsEnabled("stem/left_joiner"))
		assert.True(t, ts.IsEnabled("reachable"))
	})

	t.Run("repeated_disable_is_idempotent", func(t *testing.T) {
		ts := resolve(t, "disable paths\ncondition\ndisable paths", attrs)
		assert.False(t, ts.IsEnabled("paths"))
		assert.False(t, ts.IsEnabled("paths/extrema"))
	})
}

func TestRuleSet_ConditionsGateBlocks(t *testing.T) {
	text := `
# vendor-independent baseline
disable reachable

condition; vendor is Foo
enable name/version

condition; script is Deva
disable name
`
	t.Run("non_matching_font_keeps_defaults", func(t *testing.T) {
		ts := resolve(t, text, fontAttrs(t, "NotoSansTamil-Regular.ttf"))
		assert.False(t, ts.IsEnabled("reachable"))
		assert.True(t, ts.IsEnabled("name/version"), "unconditional default still enabled")
	})

	t.Run("deva_font_loses_name_tests", func(t *testing.T) {
		ts := resolve(t, text, fontAttrs(t, "NotoSansDevanagari-Regular.ttf"))
		assert.False(t, ts.IsEnabled("name/version"))
		assert.False(t, ts.IsEnabled("name/copyright"))
		assert.False(t, ts.IsEnabled("reachable"))
	})

	t.Run("foo_vendor_deva_font_keeps_version", func(t *testing.T) {
		attrs := fontAttrs(t, "NotoSansDevanagari-Regular.ttf")
		attrs.Vendor = "Foo"

		// The script block disables the whole name subtree, but a later
		// block re-enabling name/version would win. Order in the text is
		// vendor first, script second, so name/version is disabled here.
		ts := resolve(t, text, attrs)
		assert.False(t, ts.IsEnabled("name/version"))

		reordered := `
condition; script is Deva
disable name

condition; vendor is Foo
enable name/version
`
		ts = resolve(t, reordered, attrs)
		assert.True(t, ts.IsEnabled("name/version"))
		assert.True(t, ts.IsEnabled("name/version/out_of_range"))
		assert.False(t, ts.IsEnabled("name/copyright"))
	})
}

func TestRuleSet_FiltersFollowTheirTag(t *testing.T) {
	attrs := fontAttrs(t, "NotoSans-Regular.ttf")

	t.Run("later_block_replaces_filter", func(t *testing.T) {
		text := `
enable bounds/glyph/ymax only gid 2
condition
enable bounds/glyph/ymax only gid 3
`
		ts := resolve(t, text, attrs)
		f, err := ts.Filter("bounds/glyph/ymax")
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.False(t, f.Accept(2))
		assert.True(t, f.Accept(3))
	})

	t.Run("disable_clears_filter", func(t *testing.T) {
		text := `
enable bounds/glyph/ymax only gid 2
condition
disable bounds
condition
enable bounds
`
		ts := resolve(t, text, attrs)
		assert.True(t, ts.IsEnabled("bounds/glyph/ymax"))
		f, err := ts.Filter("bounds/glyph/ymax")
		require.NoError(t, err)
		assert.Nil(t, f, "re-enable without a clause carries no filter")
	})

	t.Run("unfiltered_tag_has_no_filter", func(t *testing.T) {
		ts := resolve(t, "", attrs)
		f, err := ts.Filter("bounds/glyph/ymax")
		require.NoError(t, err)
		assert.Nil(t, f)

		_, err = ts.Filter("bogus")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTag))
	})
}

func TestTestSet_CheckAndLogs(t *testing.T) {
	attrs := fontAttrs(t, "NotoSans-Regular.ttf")
	ts := resolve(t, "disable paths", attrs)

	run, err := ts.Check("reachable")
	require.NoError(t, err)
	assert.True(t, run)

	run, err = ts.Check("paths/extrema")
	require.NoError(t, err)
	assert.False(t, run)

	_, err = ts.Check("not/a/tag")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTag))

	assert.Equal(t, []string{"reachable"}, ts.RunLog())
	assert.Equal(t, []string{"paths/extrema"}, ts.SkipLog())

	t.Run("is_enabled_does_not_log", func(t *testing.T) {
		assert.True(t, ts.IsEnabled("stem"))
		assert.NotContains(t, ts.RunLog(), "stem")
	})

	t.Run("must_check_panics_on_unknown_tag", func(t *testing.T) {
		assert.Panics(t, func() { ts.MustCheck("not/a/tag") })
	})
}

func TestTestSet_CheckValue(t *testing.T) {
	attrs := fontAttrs(t, "NotoSans-Regular.ttf")
	ts := resolve(t, "enable bounds/glyph/ymax except gid 2-10", attrs)

	run, err := ts.CheckValue("bounds/glyph/ymax", 5)
	require.NoError(t, err)
	assert.False(t, run, "value in the except set")

	run, err = ts.CheckValue("bounds/glyph/ymax", 42)
	require.NoError(t, err)
	assert.True(t, run)

	// The tag itself still counts as run either way
	assert.Equal(t, []string{"bounds/glyph/ymax"}, ts.RunLog())

	t.Run("no_filter_means_value_ignored", func(t *testing.T) {
		run, err := ts.CheckValue("reachable", 123)
		require.NoError(t, err)
		assert.True(t, run)
	})

	t.Run("disabled_tag_never_runs", func(t *testing.T) {
		ts := resolve(t, "disable bounds", attrs)
		run, err := ts.CheckValue("bounds/glyph/ymax", 42)
		require.NoError(t, err)
		assert.False(t, run)
	})
}
