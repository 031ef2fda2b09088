package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stow/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Extract cached archives for declared dependencies into the module directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := modeFlag(cmd)
			if err != nil {
				return err
			}
			projectDir, cacheDir := c.dirs(cmd)
			return c.app.Install(cmd.Context(), projectDir, cacheDir, mode)
		},
	}
	cmd.Flags().String("mode", string(domain.ModeAll), "Dependency sets to consider (all|production)")
	return cmd
}

func modeFlag(cmd *cobra.Command) (domain.Mode, error) {
	raw, err := cmd.Flags().GetString("mode")
	if err != nil {
		return "", err
	}
	return domain.ParseMode(raw)
}
