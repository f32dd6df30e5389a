// Package commands builds the fontlint command tree.
package commands

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fontlint/internal/version"
	"github.com/arthur-debert/fontlint/pkg/display"
	"github.com/arthur-debert/fontlint/pkg/logging"
	"github.com/arthur-debert/fontlint/pkg/topics"
)

//go:embed docs
var docsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		formatFlag string
	)

	rootCmd := &cobra.Command{
		Use:     "fontlint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given: show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", MsgFlagFormat)

	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help from the embedded docs
	if docs, err := fs.Sub(docsFS, "docs"); err == nil {
		if mgr, err := topics.Load(docs, topics.NewGlamourRenderer()); err == nil {
			rootCmd.AddCommand(newTopicsCmd(mgr))
			mgr.Attach(rootCmd)
		}
	}

	return rootCmd
}

func newTopicsCmd(mgr *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [NAME]",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println("Available topics:")
				for _, name := range mgr.Names() {
					fmt.Printf("  %s\n", name)
				}
				fmt.Printf("\nUse \"fontlint topics <name>\" to read a topic.\n")
				return nil
			}
			topic, ok := mgr.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q", args[0])
			}
			fmt.Print(mgr.Render(topic))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fontlint version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

// outputFormat resolves the effective display format for stdout from the
// --format flag, falling back to the configured default.
func outputFormat(cmd *cobra.Command, configured string) (display.Format, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	if name == "" {
		name = configured
	}
	if name == "" {
		name = "auto"
	}
	format, err := display.ParseFormat(name)
	if err != nil {
		return display.FormatText, err
	}
	return format.Resolve(os.Stdout), nil
}
