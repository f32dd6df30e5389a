// Test Type: Unit Test
// Description: Tests for the font package - attribute snapshot field access

package font_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/fontlint/pkg/font"
)

func TestAttributes_Field(t *testing.T) {
	attrs := font.Attributes{
		Filename: "NotoSans-Regular.ttf",
		Name:     "Noto Sans",
		Style:    "Sans",
		Script:   "Latn",
		Variant:  "UI",
		Weight:   "Regular",
		Vendor:   "Monotype",
		Version:  "2.001",
		Hinted:   true,
	}

	tests := []struct {
		field string
		want  string
	}{
		{"filename", "NotoSans-Regular.ttf"},
		{"name", "Noto Sans"},
		{"style", "Sans"},
		{"script", "Latn"},
		{"variant", "UI"},
		{"weight", "Regular"},
		{"vendor", "Monotype"},
		{"version", "2.001"},
		{"hinted", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := attrs.Field(tt.field)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("hinted_false_form", func(t *testing.T) {
		got, ok := font.Attributes{}.Field("hinted")
		assert.True(t, ok)
		assert.Equal(t, "false", got)
	})

	t.Run("monospace_is_not_a_condition_field", func(t *testing.T) {
		_, ok := attrs.Field("monospace")
		assert.False(t, ok)
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, ok := attrs.Field("license")
		assert.False(t, ok)
	})
}
