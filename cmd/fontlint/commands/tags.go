package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fontlint/pkg/catalog"
	"github.com/arthur-debert/fontlint/pkg/config"
	"github.com/arthur-debert/fontlint/pkg/display"
)

func newTagsCmd() *cobra.Command {
	var (
		comments bool
		filters  bool
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: MsgTagsShort,
		Long:  MsgTagsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd, cfg.Format)
			if err != nil {
				return err
			}
			opts := display.ListOptions{Comments: comments, Filters: filters}
			display.RenderTagListing(os.Stdout, catalog.Default(), opts, format)
			return nil
		},
	}

	cmd.Flags().BoolVar(&comments, "comments", false, MsgFlagComments)
	cmd.Flags().BoolVar(&filters, "filters", false, MsgFlagFilters)
	return cmd
}
