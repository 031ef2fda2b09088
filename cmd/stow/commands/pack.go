package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stow/internal/core/domain"
)

func (c *CLI) newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack [target]",
		Short: "Archive installed dependencies into the cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := modeFlag(cmd)
			if err != nil {
				return err
			}
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			projectDir, cacheDir := c.dirs(cmd)
			return c.app.Pack(cmd.Context(), projectDir, cacheDir, mode, target)
		},
	}
	cmd.Flags().String("mode", string(domain.ModeAll), "Dependency sets to consider (all|production)")
	return cmd
}
