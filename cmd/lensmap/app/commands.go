package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/lensmap/cmd/lensmap/cmd/compare"
	"github.com/agentstation/lensmap/cmd/lensmap/cmd/favorites"
	"github.com/agentstation/lensmap/cmd/lensmap/cmd/lenses"
	"github.com/agentstation/lensmap/cmd/lensmap/cmd/rentals"
	"github.com/agentstation/lensmap/cmd/lensmap/cmd/serve"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(lenses.NewCommand(a))
	rootCmd.AddCommand(lenses.NewLensCommand(a))
	rootCmd.AddCommand(lenses.NewSearchCommand(a))
	rootCmd.AddCommand(rentals.NewCommand(a))
	rootCmd.AddCommand(rentals.NewRentalCommand(a))
	rootCmd.AddCommand(rentals.NewCamerasCommand(a))
	rootCmd.AddCommand(rentals.NewFormatsCommand(a))

	// Preference commands
	rootCmd.AddCommand(favorites.NewCommand(a))
	rootCmd.AddCommand(compare.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(serve.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			_, err := fmt.Fprintf(w, "lensmap version %s\ncommit: %s\nbuilt: %s\nbuilt by: %s\ngo version: %s\nplatform: %s/%s\n",
				a.version, a.commit, a.date, a.builtBy, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
