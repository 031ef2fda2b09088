// Package commands implements the CLI commands for the stow vendoring tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/stow/internal/app"
)

// CLI represents the command line interface for stow.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stow",
		Short:         "Vendor project dependencies as versioned offline archives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().String("cache", "", "Archive cache directory (default <dir>/archives)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newPackCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// dirs returns the persistent directory flags.
func (c *CLI) dirs(cmd *cobra.Command) (projectDir, cacheDir string) {
	projectDir, _ = cmd.Flags().GetString("dir")
	cacheDir, _ = cmd.Flags().GetString("cache")
	return projectDir, cacheDir
}
