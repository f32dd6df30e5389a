package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fontlint/pkg/config"
	"github.com/arthur-debert/fontlint/pkg/paths"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.ConfigFilePath()
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Printf(MsgConfigInitFormat, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(paths.ConfigFilePath())
		},
	}
}
