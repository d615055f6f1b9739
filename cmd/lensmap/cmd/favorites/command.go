// Package favorites implements the favorites commands.
package favorites

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/lensmap/cmd/application"
	"github.com/agentstation/lensmap/internal/cmd/constants"
	"github.com/agentstation/lensmap/internal/cmd/output"
	"github.com/agentstation/lensmap/internal/cmd/table"
)

// NewCommand creates the favorites command. Without a subcommand it lists
// the favorite lenses.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		GroupID: "preferences",
		Short:   "Manage favorite lenses",
		Aliases: []string{"fav"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return list(cmd, app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   constants.ActionList,
		Short: "List favorite lenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return list(cmd, app)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   constants.ActionToggle + " <lens-id>",
		Short: "Add a lens to favorites, or remove it if already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggle(cmd, app, args[0])
		},
	})

	return cmd
}

func list(cmd *cobra.Command, app application.Application) error {
	ctx := cmd.Context()
	client, err := app.Client(ctx)
	if err != nil {
		return err
	}
	format, err := output.Resolve(app.OutputFormat())
	if err != nil {
		return err
	}

	lenses, err := client.FavoriteLenses(ctx)
	if err != nil {
		return err
	}
	return output.Lenses(app.Stdout(), format, lenses, table.Marks{
		Comparing: client.Preferences().IsComparing,
	})
}

func toggle(cmd *cobra.Command, app application.Application, id string) error {
	ctx := cmd.Context()
	client, err := app.Client(ctx)
	if err != nil {
		return err
	}

	// Only catalog lenses can be favorited from the CLI.
	lens, err := client.Lens(ctx, id)
	if err != nil {
		return err
	}

	added, err := client.Preferences().ToggleFavorite(ctx, lens.ID)
	if err != nil {
		return err
	}

	if added {
		_, err = fmt.Fprintf(app.Stdout(), "Added %s to favorites\n", lens.Name)
	} else {
		_, err = fmt.Fprintf(app.Stdout(), "Removed %s from favorites\n", lens.Name)
	}
	return err
}
