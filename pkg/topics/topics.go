// Package topics provides a topic-based help system for the fontlint CLI.
// Topics are markdown or plain-text documents embedded in the binary and
// exposed through an extended `help` command, making the rule spec format
// and the tag catalog self-documenting.
package topics

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic represents one help topic
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Manager holds the loaded topics and the renderer
type Manager struct {
	topics       map[string]*Topic
	renderer     Renderer
	originalHelp func(*cobra.Command, []string)
}

// Load reads every .md and .txt file from the filesystem into a Manager
func Load(fsys fs.FS, renderer Renderer) (*Manager, error) {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	m := &Manager{topics: make(map[string]*Topic), renderer: renderer}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".txt" {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load help topics: %w", err)
	}
	return m, nil
}

// Get retrieves a topic by name
func (m *Manager) Get(name string) (*Topic, bool) {
	topic, ok := m.topics[name]
	return topic, ok
}

// Names returns all topic names, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the rendered content of a topic
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, topic.Ext)
}

// Attach extends the root command's help so that `help <topic>` renders a
// topic and `help topics` lists them; everything else falls back to the
// regular command help.
func (m *Manager) Attach(rootCmd *cobra.Command) {
	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, nil)
				return
			}
			if args[0] == "topics" {
				m.printTopicList(rootCmd.Name())
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				fmt.Print(m.Render(topic))
				return
			}
			m.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)
}

func (m *Manager) printTopicList(appName string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Println("No help topics available.")
		return
	}
	fmt.Println("Available help topics:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}
