// Test Type: Unit Test
// Description: Tests for the display package - style registry loading

package display_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontlint/pkg/display"
	"github.com/arthur-debert/fontlint/pkg/errors"
)

func TestLoadStyles(t *testing.T) {
	t.Run("custom_styles_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "styles.yaml")
		content := `colors:
  accent:
    light: "22"
    dark: "118"
styles:
  header:
    bold: true
    foreground: accent
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		err := display.LoadStyles(path)
		require.NoError(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		err := display.LoadStyles(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "styles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("styles: [not a map"), 0o644))

		err := display.LoadStyles(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}
