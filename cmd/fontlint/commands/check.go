package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fontlint/pkg/rules"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check SPECFILE",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := rules.ParseFile(args[0], nil)
			if err != nil {
				return err
			}
			fmt.Printf(MsgSpecOKFormat, args[0], rs.Len(), plural(rs.Len()))
			return nil
		},
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
