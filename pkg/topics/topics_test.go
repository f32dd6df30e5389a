// Test Type: Unit Test
// Description: Tests for the topics package - embedded help topic loading and lookup

package topics_test

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontlint/pkg/topics"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"spec-format.md": {Data: []byte("# Spec Format\n\nDirectives.\n")},
		"tags.txt":       {Data: []byte("plain tag notes\n")},
		"ignored.json":   {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	mgr, err := topics.Load(testFS(), &topics.PlainRenderer{})
	require.NoError(t, err)

	t.Run("loads_md_and_txt_only", func(t *testing.T) {
		assert.Equal(t, []string{"spec-format", "tags"}, mgr.Names())
	})

	t.Run("get_by_name", func(t *testing.T) {
		topic, ok := mgr.Get("spec-format")
		require.True(t, ok)
		assert.Equal(t, ".md", topic.Ext)
		assert.Contains(t, topic.Content, "# Spec Format")

		_, ok = mgr.Get("ignored")
		assert.False(t, ok)
	})

	t.Run("plain_renderer_passes_through", func(t *testing.T) {
		topic, ok := mgr.Get("tags")
		require.True(t, ok)
		assert.Equal(t, "plain tag notes\n", mgr.Render(topic))
	})
}

func TestManager_Attach(t *testing.T) {
	mgr, err := topics.Load(testFS(), &topics.PlainRenderer{})
	require.NoError(t, err)

	rootCmd := &cobra.Command{Use: "fontlint"}
	rootCmd.AddCommand(&cobra.Command{Use: "tags", Run: func(*cobra.Command, []string) {}})
	mgr.Attach(rootCmd)

	var helpCmd *cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			helpCmd = cmd
		}
	}
	require.NotNil(t, helpCmd)
	assert.Contains(t, helpCmd.Long, "help topics")
}
