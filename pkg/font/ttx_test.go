// Test Type: Unit Test
// Description: Tests for the font package - attribute extraction from TTX dumps

package font_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/font"
)

const sansTTX = `<?xml version="1.0" encoding="UTF-8"?>
<ttFont sfntVersion="\x00\x01\x00\x00" ttLibVersion="3.0">
  <head>
    <fontRevision value="2.004"/>
  </head>
  <name>
    <namerecord nameID="1" platformID="3" platEncID="1" langID="0x409">
      Noto Sans Devanagari
    </namerecord>
    <namerecord nameID="5" platformID="3" platEncID="1" langID="0x409">
      Version 2.001;GOOG;noto-source
    </namerecord>
    <namerecord nameID="16" platformID="3" platEncID="1" langID="0x409">
      Noto Sans
    </namerecord>
  </name>
  <OS_2>
    <achVendID value="GOOG"/>
  </OS_2>
  <post>
    <isFixedPitch value="0"/>
  </post>
  <fpgm>
    <assembly>PUSHB[ ] 0</assembly>
  </fpgm>
</ttFont>
`

const minimalTTX = `<?xml version="1.0" encoding="UTF-8"?>
<ttFont>
  <post>
    <isFixedPitch value="1"/>
  </post>
</ttFont>
`

func TestParseTTX(t *testing.T) {
	t.Run("tables_override_name_derived_fields", func(t *testing.T) {
		attrs, err := font.ParseTTX(strings.NewReader(sansTTX), "NotoSansDevanagari-Regular.ttf.ttx")
		require.NoError(t, err)

		// From the file name
		assert.Equal(t, "Sans", attrs.Style)
		assert.Equal(t, "Deva", attrs.Script)
		assert.Equal(t, "Regular", attrs.Weight)

		// From the dumped tables
		assert.Equal(t, "Noto Sans", attrs.Name, "typographic family name wins")
		assert.Equal(t, "2.004", attrs.Version, "head fontRevision wins over the name table version")
		assert.Equal(t, "GOOG", attrs.Vendor)
		assert.False(t, attrs.Monospace)
		assert.True(t, attrs.Hinted, "fpgm table marks the font as hinted")
	})

	t.Run("non_guideline_file_name", func(t *testing.T) {
		attrs, err := font.ParseTTX(strings.NewReader(minimalTTX), "custom.ttx")
		require.NoError(t, err)
		assert.Equal(t, "custom.ttx", attrs.Filename)
		assert.Empty(t, attrs.Name)
		assert.True(t, attrs.Monospace)
		assert.False(t, attrs.Hinted)
	})

	t.Run("family_name_falls_back_to_name_id_1", func(t *testing.T) {
		ttx := `<ttFont><name>
			<namerecord nameID="1">Noto Serif</namerecord>
		</name></ttFont>`
		attrs, err := font.ParseTTX(strings.NewReader(ttx), "custom.ttx")
		require.NoError(t, err)
		assert.Equal(t, "Noto Serif", attrs.Name)
	})

	t.Run("version_string_parsing", func(t *testing.T) {
		ttx := `<ttFont><name>
			<namerecord nameID="5">Version 1.04 uh1</namerecord>
		</name></ttFont>`
		attrs, err := font.ParseTTX(strings.NewReader(ttx), "custom.ttx")
		require.NoError(t, err)
		assert.Equal(t, "1.04", attrs.Version)
	})

	t.Run("rejects_non_ttx_document", func(t *testing.T) {
		_, err := font.ParseTTX(strings.NewReader("<html></html>"), "page.ttx")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFontTTX))
	})

	t.Run("rejects_malformed_xml", func(t *testing.T) {
		_, err := font.ParseTTX(strings.NewReader("<ttFont><name>"), "broken.ttx")
		require.Error(t, err)
	})
}

func TestFromTTX_MissingFile(t *testing.T) {
	_, err := font.FromTTX("does-not-exist.ttx")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
