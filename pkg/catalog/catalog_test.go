// Test Type: Unit Test
// Description: Tests for the catalog package - tag hierarchy parsing and scope resolution

package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontlint/pkg/catalog"
	"github.com/arthur-debert/fontlint/pkg/errors"
)

const testData = `
  alpha -- first group
    one
    two except|only cp
      deep
  beta
    one
    filtered except|only cp|gid
`

func TestParse(t *testing.T) {
	cat, err := catalog.Parse(testData)
	require.NoError(t, err)

	t.Run("builds_full_tag_paths", func(t *testing.T) {
		for _, tag := range []string{"alpha", "alpha/one", "alpha/two", "alpha/two/deep", "beta", "beta/one", "beta/filtered"} {
			assert.True(t, cat.Has(tag), "missing %s", tag)
		}
		assert.Equal(t, 7, cat.Len())
	})

	t.Run("interior_tags_are_entries", func(t *testing.T) {
		entry, ok := cat.Entry("alpha")
		require.True(t, ok)
		assert.Equal(t, "first group", entry.Comment)
		assert.False(t, entry.AllowsOptions())
	})

	t.Run("filter_patterns", func(t *testing.T) {
		entry, ok := cat.Entry("alpha/two")
		require.True(t, ok)
		assert.True(t, entry.AllowsOptions())
		assert.True(t, entry.AllowsRelation("except"))
		assert.True(t, entry.AllowsRelation("only"))
		assert.True(t, entry.AllowsArgType("cp"))
		assert.False(t, entry.AllowsArgType("gid"))

		entry, ok = cat.Entry("beta/filtered")
		require.True(t, ok)
		assert.True(t, entry.AllowsArgType("cp"))
		assert.True(t, entry.AllowsArgType("gid"))
	})

	t.Run("tags_are_sorted", func(t *testing.T) {
		tags := cat.Tags()
		for i := 1; i < len(tags); i++ {
			assert.Less(t, tags[i-1], tags[i])
		}
	})

	t.Run("rejects_malformed_line", func(t *testing.T) {
		_, err := catalog.Parse("  UpperCase\n")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogParse))
	})
}

func TestDefault(t *testing.T) {
	cat := catalog.Default()

	t.Run("is_shared", func(t *testing.T) {
		assert.Same(t, cat, catalog.Default())
	})

	t.Run("contains_known_tags", func(t *testing.T) {
		for _, tag := range []string{
			"name/version/out_of_range",
			"cmap/script_required",
			"head/os2/achvendid",
			"bounds/glyph/ymax",
			"gdef/classdef/not_present",
			"hints/unexpected_tables",
			"reachable",
		} {
			assert.True(t, cat.Has(tag), "missing %s", tag)
		}
	})

	t.Run("every_tag_has_its_ancestors", func(t *testing.T) {
		for _, tag := range cat.Tags() {
			parts := strings.Split(tag, "/")
			for i := 1; i < len(parts); i++ {
				prefix := strings.Join(parts[:i], "/")
				assert.True(t, cat.Has(prefix), "tag %s lacks ancestor %s", tag, prefix)
			}
		}
	})

	t.Run("filterable_tags", func(t *testing.T) {
		entry, ok := cat.Entry("cmap/script_required")
		require.True(t, ok)
		assert.True(t, entry.AllowsArgType("cp"))
		assert.False(t, entry.AllowsArgType("gid"))

		entry, ok = cat.Entry("bounds/glyph/ymax")
		require.True(t, ok)
		assert.True(t, entry.AllowsArgType("cp"))
		assert.True(t, entry.AllowsArgType("gid"))

		entry, ok = cat.Entry("bounds/font/ymax")
		require.True(t, ok)
		assert.False(t, entry.AllowsOptions())
	})
}

func TestCatalog_ResolveScope(t *testing.T) {
	cat, err := catalog.Parse(testData)
	require.NoError(t, err)

	tests := []struct {
		name     string
		tag      string
		want     []string
		wantCode errors.ErrorCode
	}{
		{
			name: "exact_leaf",
			tag:  "alpha/one",
			want: []string{"alpha/one"},
		},
		{
			name: "exact_interior_includes_subtree",
			tag:  "alpha",
			want: []string{"alpha", "alpha/one", "alpha/two", "alpha/two/deep"},
		},
		{
			name: "partial_tag_with_unique_segment",
			tag:  "deep",
			want: []string{"alpha/two/deep"},
		},
		{
			name: "partial_tag_resolves_then_expands",
			tag:  "filtered",
			want: []string{"beta/filtered"},
		},
		{
			name:     "ambiguous_segment",
			tag:      "one",
			wantCode: errors.ErrAmbiguousTag,
		},
		{
			name:     "unknown_tag",
			tag:      "gamma",
			wantCode: errors.ErrUnknownTag,
		},
		{
			name:     "segment_must_be_delimited",
			tag:      "lph",
			wantCode: errors.ErrUnknownTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := cat.ResolveScope(tt.tag)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, scope.Sorted())
		})
	}
}

func TestCatalog_ResolveScope_UnderscoreSegment(t *testing.T) {
	cat := catalog.Default()

	// "achvendid" only appears as head/os2/achvendid
	scope, err := cat.ResolveScope("achvendid")
	require.NoError(t, err)
	assert.Equal(t, []string{"head/os2/achvendid"}, scope.Sorted())

	// "out_of_range" matches via '_'-delimited segments inside the name
	scope, err = cat.ResolveScope("out_of_range")
	require.NoError(t, err)
	assert.Equal(t, []string{"name/version/out_of_range"}, scope.Sorted())

	// "missing" appears under cmap/tables, complex/gpos and complex/gsub
	_, err = cat.ResolveScope("missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAmbiguousTag))
}
