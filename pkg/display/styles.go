package display

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/fontlint/pkg/errors"
	"github.com/arthur-debert/fontlint/pkg/logging"
)

//go:embed embedded/styles.yaml
var defaultStylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// StylesConfig represents the complete styles configuration
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// styleRegistry maps semantic names to lipgloss styles
var styleRegistry map[string]lipgloss.Style

func init() {
	if err := loadStylesBytes(defaultStylesYAML); err != nil {
		// The embedded styles are fixed at build time; failing to parse
		// them is a programming error.
		panic(err)
	}
}

// LoadStyles loads a custom styles configuration from the specified file
// path, overriding the embedded defaults.
func LoadStyles(path string) error {
	log := logging.GetLogger("display")

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "read styles file %q", path)
	}
	if err := loadStylesBytes(data); err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("Loaded custom styles")
	return nil
}

func loadStylesBytes(data []byte) error {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "parse styles YAML")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			if color, ok := colors[def.Foreground]; ok {
				style = style.Foreground(color)
			} else {
				style = style.Foreground(lipgloss.Color(def.Foreground))
			}
		}
		if def.Background != "" {
			if color, ok := colors[def.Background]; ok {
				style = style.Background(color)
			} else {
				style = style.Background(lipgloss.Color(def.Background))
			}
		}
		registry[name] = style
	}

	styleRegistry = registry
	return nil
}

// Styled renders text with the named semantic style when the format is
// FormatTerminal; otherwise the text passes through unchanged.
func Styled(format Format, name, text string) string {
	if format != FormatTerminal {
		return text
	}
	style, ok := styleRegistry[name]
	if !ok {
		return text
	}
	return style.Render(text)
}
